package multicoin

import (
	"github.com/btcsuite/btcd/chaincfg"
)

// DogeMainNetParams defines Dogecoin mainnet parameters.
// Dogecoin has no segwit, so Bech32HRPSegwit is left empty.
var DogeMainNetParams = chaincfg.Params{
	Name: "dogecoin-mainnet",
	Net:  0xc0c0c0c0,

	PubKeyHashAddrID: 0x1e, // D prefix
	ScriptHashAddrID: 0x16, // 9 or A prefix
	PrivateKeyID:     0x9e,

	HDPrivateKeyID: [4]byte{0x02, 0xfa, 0xc3, 0x98}, // dgpv
	HDPublicKeyID:  [4]byte{0x02, 0xfa, 0xca, 0xfd}, // dgub

	HDCoinType: 3,
}
