package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// NameResolverABI is the ENSIP-3 reverse record interface, name(bytes32)
var NameResolverABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(nameResolverABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	NameResolverABI = _abi
}

var nameResolverABIJson = `
[
  {
    "inputs": [
      {
        "internalType": "bytes32",
        "name": "node",
        "type": "bytes32"
      }
    ],
    "name": "name",
    "outputs": [
      {
        "internalType": "string",
        "name": "",
        "type": "string"
      }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]
`
