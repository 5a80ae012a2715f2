package validator

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var networkRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// IsValidNetwork reports whether s can be a key of the networks config
func IsValidNetwork(s string) bool {
	return networkRegexp.MatchString(s)
}

// NewCustomValidator registers the `network` tag and wraps v as echo's validator.
// It panics when the tag cannot be registered.
func NewCustomValidator(v *validator.Validate) echo.Validator {
	if err := v.RegisterValidation("network", func(fl validator.FieldLevel) bool {
		return IsValidNetwork(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
