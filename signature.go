package easywallet

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// Signature represents a cryptographic signature (ECDSA) with a recovery
// id. The recovery id V identifies which of the candidate curve points is
// the signer's public key, allowing verification without prior knowledge
// of the key.
// See https://en.wikipedia.org/wiki/Elliptic_Curve_Digital_Signature_Algorithm
type Signature struct {
	R *big.Int
	S *big.Int
	V byte
}

// NewSignature creates a signature from its components.
func NewSignature(r, s *big.Int, v byte) *Signature {
	return &Signature{R: r, S: s, V: v}
}

// NewSignatureFromRSV creates a signature from its 65-byte serialized form,
// r || s || v.
func NewSignatureFromRSV(b []byte) (*Signature, error) {
	if len(b) != 65 {
		return nil, fmt.Errorf("%w: expected 65 bytes, got %d", ErrInvalidLength, len(b))
	}
	return &Signature{
		R: new(big.Int).SetBytes(b[:32]),
		S: new(big.Int).SetBytes(b[32:64]),
		V: b[64],
	}, nil
}

// newSignatureFromCompact parses the 65-byte compact form produced by
// SignCompact: header || r || s, header = 27 + v, plus 4 when the signing
// key's public key is meant to be recovered in compressed form.
func newSignatureFromCompact(compact []byte) (*Signature, error) {
	if len(compact) != 65 {
		return nil, fmt.Errorf("%w: expected 65 bytes, got %d", ErrInvalidLength, len(compact))
	}
	if compact[0] < 27 {
		return nil, ErrInvalidSignature
	}
	return &Signature{
		R: new(big.Int).SetBytes(compact[1:33]),
		S: new(big.Int).SetBytes(compact[33:65]),
		V: (compact[0] - 27) & 3,
	}, nil
}

// components returns r and s as fixed 32-byte values, or an error if
// either does not fit.
func (sig *Signature) components() (r, s [32]byte, err error) {
	if sig.R == nil || sig.S == nil ||
		sig.R.Sign() <= 0 || sig.S.Sign() <= 0 ||
		sig.R.BitLen() > 256 || sig.S.BitLen() > 256 {
		return r, s, ErrInvalidSignature
	}
	sig.R.FillBytes(r[:])
	sig.S.FillBytes(s[:])
	return r, s, nil
}

// ToRS returns the signature serialized as r || s (64 bytes).
func (sig *Signature) ToRS() [64]byte {
	var result [64]byte
	sig.R.FillBytes(result[:32])
	sig.S.FillBytes(result[32:])
	return result
}

// ToRSV returns the signature serialized as r || s || v (65 bytes), the
// form used by Ethereum.
func (sig *Signature) ToRSV() [65]byte {
	var result [65]byte
	sig.R.FillBytes(result[:32])
	sig.S.FillBytes(result[32:64])
	result[64] = sig.V
	return result
}

// ToVRS returns the signature serialized as v || r || s (65 bytes), the
// form used by some chains and by Bitcoin compact signatures (with a
// header offset applied by the consumer).
func (sig *Signature) ToVRS() [65]byte {
	var result [65]byte
	result[0] = sig.V
	sig.R.FillBytes(result[1:33])
	sig.S.FillBytes(result[33:])
	return result
}

// Verify verifies the signer using the public key and the hash of the data.
func (sig *Signature) Verify(key *PublicKey, hash []byte) bool {
	rBytes, sBytes, err := sig.components()
	if err != nil {
		return false
	}
	var r, s btcec.ModNScalar
	if overflow := r.SetBytes(&rBytes); overflow != 0 {
		return false
	}
	if overflow := s.SetBytes(&sBytes); overflow != 0 {
		return false
	}
	return btcecdsa.NewSignature(&r, &s).Verify(hash, key.key)
}

// RecoverPublicKey reconstructs the signer's public key from a 32-byte
// digest and a signature with recovery id. It returns ErrInvalidSignature
// if the recovery id is out of range or recovery does not yield a valid
// curve point.
func RecoverPublicKey(hash []byte, sig *Signature) (*PublicKey, error) {
	if len(hash) != 32 {
		return nil, fmt.Errorf("%w: digest must be 32 bytes, got %d",
			ErrInvalidLength, len(hash))
	}
	if sig == nil || sig.V > 3 {
		return nil, ErrInvalidSignature
	}
	rBytes, sBytes, err := sig.components()
	if err != nil {
		return nil, err
	}
	compact := make([]byte, 65)
	compact[0] = 27 + sig.V + 4
	copy(compact[1:33], rBytes[:])
	copy(compact[33:], sBytes[:])
	key, compressed, err := btcecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return &PublicKey{key: key, compressed: compressed}, nil
}
