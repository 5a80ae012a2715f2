package multicoin

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/ensapi/domain/ens"
	"golang.org/x/xerrors"
)

var evmCodes = map[string]struct{}{
	ens.CodeETH:       {},
	ens.CodeBase:      {},
	ens.CodeArbitrum:  {},
	ens.CodePolygon:   {},
	ens.CodeAvalanche: {},
	ens.CodeBSC:       {},
	ens.CodeOptimism:  {},
}

// IsEVM reports whether code is ether or one of the EVM chains sharing its address format
func IsEVM(code string) bool {
	_, ok := evmCodes[code]
	return ok
}

// decodeEVM accepts a bare 20 byte address or one left padded to 32 bytes.
func decodeEVM(b []byte) (Result, error) {
	switch {
	case len(b) == common.AddressLength:
	case len(b) == common.HashLength && isZero(b[:common.HashLength-common.AddressLength]):
		b = b[common.HashLength-common.AddressLength:]
	default:
		return Result{}, xerrors.Errorf("invalid evm address length %d", len(b))
	}

	return Result{
		Address:  common.BytesToAddress(b).Hex(),
		Encoding: EncodingEIP55,
	}, nil
}
