package domain

import (
	"strings"
)

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsZero reports whether a is empty or the all-zero address
func (a Address) IsZero() bool {
	return a.IsEmpty() || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) String() string {
	return string(a)
}

// Network is the name of a configured rpc network, e.g. mainnet
type Network string

const DefaultNetwork = Network("mainnet")

func (n Network) String() string {
	return string(n)
}
