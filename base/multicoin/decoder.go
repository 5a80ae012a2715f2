// Package multicoin renders ENSIP-9 multi-coin address bytes as chain native address strings.
//
// Decoding is total: bytes that do not match any known layout of the chain are rendered as
// `<code>_0x<hex>`.
package multicoin

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/x-xyz/ensapi/domain/ens"
	"golang.org/x/xerrors"
)

type Encoding string

const (
	EncodingEIP55  Encoding = "eip55"
	EncodingP2PKH  Encoding = "p2pkh"
	EncodingP2WPKH Encoding = "p2wpkh"
	EncodingP2TR   Encoding = "p2tr"
	EncodingBase58 Encoding = "base58"
	EncodingHex    Encoding = "hex"
)

// Result is a decoded address. Err holds the reason of a hex fallback.
type Result struct {
	Address  string   `json:"address"`
	Encoding Encoding `json:"encoding"`
	Err      error    `json:"-"`
}

// IsFallback reports whether the bytes could not be decoded for the chain
func (r Result) IsFallback() bool {
	return r.Encoding == EncodingHex
}

type decodeFunc func(b []byte) (Result, error)

var decoders = map[string]decodeFunc{
	ens.CodeETH:       decodeEVM,
	ens.CodeBase:      decodeEVM,
	ens.CodeArbitrum:  decodeEVM,
	ens.CodePolygon:   decodeEVM,
	ens.CodeAvalanche: decodeEVM,
	ens.CodeBSC:       decodeEVM,
	ens.CodeOptimism:  decodeEVM,
	ens.CodeBTC:       decodeUTXO(&chaincfg.MainNetParams, true),
	ens.CodeDOGE:      decodeUTXO(&DogeMainNetParams, false),
	ens.CodeSOL:       decodeSolana,
}

// Decode renders b, as returned by the resolver for chain code, as an address.
func Decode(b []byte, code string) (res Result) {
	dec, ok := decoders[code]
	if !ok {
		return HexFallback(b, code, xerrors.Errorf("no decoder for %q", code))
	}

	defer func() {
		if p := recover(); p != nil {
			res = HexFallback(b, code, fmt.Errorf("decoder panic: %v", p))
		}
	}()

	decoded, err := dec(b)
	if err != nil {
		return HexFallback(b, code, err)
	}
	return decoded
}

// HexFallback tags the raw bytes with the chain code
func HexFallback(b []byte, code string, reason error) Result {
	return Result{
		Address:  code + "_" + hexutil.Encode(b),
		Encoding: EncodingHex,
		Err:      reason,
	}
}

// IsEmpty reports whether b is the "not set" value of the chain: no bytes at all, or the zero
// address on EVM chains.
func IsEmpty(b []byte, code string) bool {
	if len(b) == 0 {
		return true
	}
	return IsEVM(code) && isZero(b)
}

// HasDecoder reports whether code has a decoder other than the hex fallback
func HasDecoder(code string) bool {
	_, ok := decoders[code]
	return ok
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
