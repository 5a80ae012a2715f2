package abi

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameResolverABI(t *testing.T) {
	req := require.New(t)
	method, ok := NameResolverABI.Methods["name"]
	req.True(ok)
	req.Equal("691f3431", hex.EncodeToString(method.ID))

	packed, err := NameResolverABI.Pack("name", [32]byte{1})
	req.NoError(err)
	req.Len(packed, 4+32)
}
