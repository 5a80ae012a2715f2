package multicoin

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"golang.org/x/xerrors"
)

// decodeSolana renders a 32 byte ed25519 public key as base58.
func decodeSolana(b []byte) (Result, error) {
	if len(b) != ed25519.PublicKeySize {
		return Result{}, xerrors.Errorf("invalid solana public key length %d", len(b))
	}

	pub := ed25519.PublicKey(b)
	return Result{
		Address:  base58.Encode(pub),
		Encoding: EncodingBase58,
	}, nil
}
