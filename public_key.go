package easywallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

// PublicKey represents a secp256k1 public key, together with a display
// preference (compressed or uncompressed serialization). The preference
// affects serialization and legacy address derivation only; two keys are
// equal when they are the same curve point, whatever their preference.
type PublicKey struct {
	key        *btcec.PublicKey
	compressed bool
}

// NewPublicKeyFromBytes creates a public key from its SEC-encoded form,
// either 33 bytes (compressed) or 65 bytes (uncompressed). The display
// preference follows the input encoding.
func NewPublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != 33 && len(b) != 65 {
		return nil, fmt.Errorf("%w: expected 33 or 65 bytes, got %d",
			ErrInvalidLength, len(b))
	}
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &PublicKey{key: key, compressed: len(b) == 33}, nil
}

// IsCompressed returns true if the key prefers the compressed display form.
func (pbk *PublicKey) IsCompressed() bool {
	return pbk.compressed
}

// Serialize returns the key in its preferred display form, either 33 or
// 65 bytes.
func (pbk *PublicKey) Serialize() []byte {
	if pbk.compressed {
		return pbk.key.SerializeCompressed()
	}
	return pbk.key.SerializeUncompressed()
}

// SerializeCompressed returns the key in SEC compressed format. The result
// is 33 bytes long.
func (pbk *PublicKey) SerializeCompressed() []byte {
	return pbk.key.SerializeCompressed()
}

// SerializeUncompressed returns the key in SEC uncompressed format, with
// the 0x04 prefix. The result is 65 bytes long.
func (pbk *PublicKey) SerializeUncompressed() []byte {
	return pbk.key.SerializeUncompressed()
}

// Hash160 returns ripemd160(sha256(key)) over the preferred display form.
// This is the payload of legacy and segwit pay-to-pubkey-hash addresses.
func (pbk *PublicKey) Hash160() []byte {
	return Hash160(pbk.Serialize())
}

// Verify checks an ECDSA signature over a 32-byte digest against this key.
// It returns ErrInvalidSignature if the signature is malformed or does not
// match.
func (pbk *PublicKey) Verify(hash []byte, sig *Signature) error {
	if sig == nil || !sig.Verify(pbk, hash) {
		return ErrInvalidSignature
	}
	return nil
}

// Address derives an address for this key on the given network and format.
func (pbk *PublicKey) Address(network *Network, format AddressFormat) (*Address, error) {
	return NewAddress(pbk, network, format)
}

// EthereumAddress derives the Ethereum address for this key.
func (pbk *PublicKey) EthereumAddress() *Address {
	return NewEthereumAddress(pbk)
}

// Equal returns true if this key is equal to the other key. Equality is
// point equality; the display preference does not participate.
func (pbk *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return pbk.key.IsEqual(other.key)
}
