package domain

import "errors"

var (
	// ErrInvalidFormat will throw if a `name.eth:chain` query has no .eth base domain
	ErrInvalidFormat = errors.New("invalid domain format")
	// ErrUnsupportedNetwork will throw if the requested network has no rpc configured
	ErrUnsupportedNetwork = errors.New("unsupported network")
	// ErrInvalidAddress will throw if a reverse lookup is given a non hex address
	ErrInvalidAddress = errors.New("Invalid address")
)

// IsRequestError reports whether err is caused by the caller's input rather than by the service
func IsRequestError(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrUnsupportedNetwork) ||
		errors.Is(err, ErrInvalidAddress)
}
