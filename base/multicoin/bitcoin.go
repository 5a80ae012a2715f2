package multicoin

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"golang.org/x/xerrors"
)

const (
	pubKeyHashLen     = 20
	witnessV0Len      = 2 + pubKeyHashLen
	serializedAddrLen = 1 + pubKeyHashLen + 4
	taprootKeyLen     = 32
)

// decodeUTXO decodes bitcoin style address bytes by length:
//
//	20 bytes: pubkey hash, P2PKH
//	22 bytes: OP_0 <20 byte program>, P2WPKH (segwit chains only)
//	25 bytes: P2PKH script, or version + hash + checksum already serialized
//	32 bytes: taproot output key, P2TR (segwit chains only)
//
// Anything else is retried as a plain pubkey hash.
func decodeUTXO(net *chaincfg.Params, segwit bool) decodeFunc {
	return func(b []byte) (Result, error) {
		res, err := decodeUTXOByLength(b, net, segwit)
		if err == nil {
			return res, nil
		}

		if res, retryErr := decodeP2PKH(b, net); retryErr == nil {
			return res, nil
		}
		return Result{}, err
	}
}

func decodeUTXOByLength(b []byte, net *chaincfg.Params, segwit bool) (Result, error) {
	switch {
	case len(b) == pubKeyHashLen:
		return decodeP2PKH(b, net)
	case len(b) == witnessV0Len && segwit:
		return decodeP2WPKH(b, net)
	case len(b) == serializedAddrLen:
		return decodeSerialized(b, net)
	case len(b) == taprootKeyLen && segwit:
		return decodeP2TR(b, net)
	}
	return Result{}, xerrors.Errorf("unexpected %s address length %d", net.Name, len(b))
}

func decodeP2PKH(b []byte, net *chaincfg.Params) (Result, error) {
	addr, err := btcutil.NewAddressPubKeyHash(b, net)
	if err != nil {
		return Result{}, err
	}
	return Result{Address: addr.EncodeAddress(), Encoding: EncodingP2PKH}, nil
}

func decodeP2WPKH(b []byte, net *chaincfg.Params) (Result, error) {
	if version := b[0]; version != 0 {
		return Result{}, xerrors.Errorf("unsupported witness version %d", version)
	}
	if push := b[1]; push != pubKeyHashLen {
		return Result{}, xerrors.Errorf("invalid witness program length %d", push)
	}

	addr, err := btcutil.NewAddressWitnessPubKeyHash(b[2:], net)
	if err != nil {
		return Result{}, err
	}
	return Result{Address: addr.EncodeAddress(), Encoding: EncodingP2WPKH}, nil
}

func decodeP2TR(b []byte, net *chaincfg.Params) (Result, error) {
	addr, err := btcutil.NewAddressTaproot(b, net)
	if err != nil {
		return Result{}, err
	}
	return Result{Address: addr.EncodeAddress(), Encoding: EncodingP2TR}, nil
}

func decodeSerialized(b []byte, net *chaincfg.Params) (Result, error) {
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(b, net)
	if err == nil && class == txscript.PubKeyHashTy && len(addrs) == 1 {
		return Result{Address: addrs[0].EncodeAddress(), Encoding: EncodingP2PKH}, nil
	}

	encoded := base58.Encode(b)
	_, version, err := base58.CheckDecode(encoded)
	if err != nil {
		return Result{}, xerrors.Errorf("base58check: %w", err)
	}
	if version != net.PubKeyHashAddrID && version != net.ScriptHashAddrID {
		return Result{}, xerrors.Errorf("unexpected %s address version 0x%02x", net.Name, version)
	}
	return Result{Address: encoded, Encoding: EncodingBase58}, nil
}
