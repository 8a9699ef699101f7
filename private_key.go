package easywallet

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PrivateKey represents a secp256k1 private key. The caller owns the key
// material and is responsible for calling Zero when done with it.
type PrivateKey struct {
	key *btcec.PrivateKey
}

// NewPrivateKey creates a new random private key, drawing entropy from
// rand. The caller must supply a cryptographically secure source, normally
// crypto/rand.Reader; this package never substitutes one.
func NewPrivateKey(rand io.Reader) (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKeyFromRand(rand)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	return &PrivateKey{key: key}, nil
}

// NewPrivateKeyFromBytes creates a private key from its 32-byte big-endian
// scalar. The scalar must be in the range [1, n-1] where n is the curve
// order; zero or out-of-range values return ErrInvalidPrivateKey.
func NewPrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("%w: expected 32 bytes, got %d", ErrInvalidLength, len(b))
	}
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(b)
	if overflow || scalar.IsZero() {
		scalar.Zero()
		return nil, ErrInvalidPrivateKey
	}
	key := secp256k1.NewPrivateKey(&scalar)
	scalar.Zero()
	return &PrivateKey{key: key}, nil
}

// NewPrivateKeyFromWIF creates a private key from its Wallet Import Format
// encoding on the given network. The second return value reports whether
// the WIF string carried the compressed public key marker.
func NewPrivateKeyFromWIF(wif string, network *Network) (*PrivateKey, bool, error) {
	version, payload, err := Base58CheckDecode(wif)
	if err != nil {
		return nil, false, err
	}
	defer zeroBytes(payload)
	if version != network.WIFPrefix {
		return nil, false, fmt.Errorf("%w: wrong WIF version byte 0x%02x",
			ErrInvalidEncoding, version)
	}
	compressed := false
	switch len(payload) {
	case 32:
	case 33:
		if payload[32] != 0x01 {
			return nil, false, fmt.Errorf("%w: bad WIF compression marker",
				ErrInvalidEncoding)
		}
		compressed = true
		payload = payload[:32]
	default:
		return nil, false, fmt.Errorf("%w: WIF payload must be 32 or 33 bytes, got %d",
			ErrInvalidLength, len(payload))
	}
	key, err := NewPrivateKeyFromBytes(payload)
	if err != nil {
		return nil, false, err
	}
	return key, compressed, nil
}

// ToWIF returns the key in Wallet Import Format for the given network. If
// compressed is true the encoding carries the marker telling wallets to
// derive addresses from the compressed public key.
func (pk *PrivateKey) ToWIF(network *Network, compressed bool) string {
	payload := pk.key.Serialize()
	defer zeroBytes(payload)
	if compressed {
		full := make([]byte, 33)
		copy(full, payload)
		full[32] = 0x01
		defer zeroBytes(full)
		return Base58CheckEncode(network.WIFPrefix, full)
	}
	return Base58CheckEncode(network.WIFPrefix, payload)
}

// PublicKey returns the public key derived from this private key, with the
// compressed display preference.
func (pk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: pk.key.PubKey(), compressed: true}
}

// Bytes returns the raw 32-byte scalar. This is the only way the secret
// leaves the key; the caller owns the returned copy and should wipe it.
func (pk *PrivateKey) Bytes() []byte {
	return pk.key.Serialize()
}

// SignPrehash produces a deterministic ECDSA signature (RFC 6979 nonce)
// over a 32-byte digest the caller has already computed. The digest is
// never re-hashed here. The returned signature includes the recovery id.
func (pk *PrivateKey) SignPrehash(hash []byte) (*Signature, error) {
	if len(hash) != 32 {
		return nil, fmt.Errorf("%w: digest must be 32 bytes, got %d",
			ErrInvalidLength, len(hash))
	}
	compact := btcecdsa.SignCompact(pk.key, hash, true)
	// Compact format is header || r || s, header = 27 + v (+4 when the
	// recovered key is compressed).
	return newSignatureFromCompact(compact)
}

// Equal returns true if this key is equal to the other key.
func (pk *PrivateKey) Equal(other *PrivateKey) bool {
	if other == nil {
		return false
	}
	return pk.key.Key.Equals(&other.key.Key)
}

// Zero overwrites the key material with zeros. The key must not be used
// after calling Zero.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
