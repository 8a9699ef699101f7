package easywallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// MinSeedBytes is the minimum number of seed bytes allowed when
	// creating a master key.
	MinSeedBytes = 16

	// MaxSeedBytes is the maximum number of seed bytes allowed when
	// creating a master key.
	MaxSeedBytes = 64

	maxDerivationDepth = 255
	serializedKeyLen   = 78
)

// masterHMACKey is the HMAC key fixed by BIP-32 for master key generation.
var masterHMACKey = []byte("Bitcoin seed")

// ExtendedPrivateKey is a BIP-32 extended private key: a private key plus
// the chain code and bookkeeping needed to derive a tree of child keys.
// The caller owns the key and must call Zero when done with it; derived
// children keep no reference to their parent beyond the fingerprint.
type ExtendedPrivateKey struct {
	key        *PrivateKey
	chainCode  [32]byte
	depth      uint8
	parentFP   [4]byte
	childIndex uint32
	network    *Network
}

// NewMasterKey creates the master extended key from a seed, normally the
// output of Mnemonic.Seed. The seed must be between 16 and 64 bytes.
func NewMasterKey(seed []byte, network *Network) (*ExtendedPrivateKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, fmt.Errorf("%w: seed must be between %d and %d bytes",
			ErrInvalidLength, MinSeedBytes, MaxSeedBytes)
	}
	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	intermediate := mac.Sum(nil)
	defer zeroBytes(intermediate)

	key, err := NewPrivateKeyFromBytes(intermediate[:32])
	if err != nil {
		// Only happens for a seed whose HMAC left half falls outside
		// [1, n-1], which has probability below 1 in 2^127.
		return nil, ErrInvalidPrivateKey
	}
	result := &ExtendedPrivateKey{
		key:     key,
		network: network,
	}
	copy(result.chainCode[:], intermediate[32:])
	return result, nil
}

// Derive derives the child key at the given index. Indices at or above
// HardenedKeyStart use hardened derivation, which requires this private
// key and makes the child unlinkable from public material alone.
//
// BIP-32 leaves roughly one index in 2^127 invalid (the HMAC left half is
// not below the curve order, or the child scalar is zero). Derive fails
// fast with ErrInvalidChild for such an index instead of silently moving
// to the next one, so that a path always names the same key; the caller
// decides which index to try instead.
func (k *ExtendedPrivateKey) Derive(index uint32) (*ExtendedPrivateKey, error) {
	if k.depth == maxDerivationDepth {
		return nil, ErrDeriveBeyondMaxDepth
	}

	// Hardened children commit to the private key, normal children to the
	// compressed public key.
	data := make([]byte, 0, 37)
	if index >= HardenedKeyStart {
		keyBytes := k.key.Bytes()
		data = append(data, 0x00)
		data = append(data, keyBytes...)
		zeroBytes(keyBytes)
	} else {
		data = append(data, k.key.PublicKey().SerializeCompressed()...)
	}
	data = binary.BigEndian.AppendUint32(data, index)
	defer zeroBytes(data)

	mac := hmac.New(sha512.New, k.chainCode[:])
	mac.Write(data)
	intermediate := mac.Sum(nil)
	defer zeroBytes(intermediate)

	// Child scalar = parent scalar + left half, mod n.
	var ilScalar secp256k1.ModNScalar
	overflow := ilScalar.SetByteSlice(intermediate[:32])
	if overflow {
		ilScalar.Zero()
		return nil, ErrInvalidChild
	}
	ilScalar.Add(&k.key.key.Key)
	if ilScalar.IsZero() {
		return nil, ErrInvalidChild
	}
	childKey := &PrivateKey{key: secp256k1.NewPrivateKey(&ilScalar)}
	ilScalar.Zero()

	child := &ExtendedPrivateKey{
		key:        childKey,
		depth:      k.depth + 1,
		childIndex: index,
		network:    k.network,
	}
	copy(child.chainCode[:], intermediate[32:])
	copy(child.parentFP[:], Hash160(k.key.PublicKey().SerializeCompressed())[:4])
	return child, nil
}

// DerivePath derives the key the path names, walking one child at a time.
// Intermediate keys are wiped before returning. An empty path returns the
// receiver itself.
func (k *ExtendedPrivateKey) DerivePath(path DerivationPath) (*ExtendedPrivateKey, error) {
	current := k
	for _, index := range path {
		next, err := current.Derive(index)
		if current != k {
			current.Zero()
		}
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// DerivePathString parses a path such as "m/44'/0'/0'/0/0" and derives the
// key it names.
func (k *ExtendedPrivateKey) DerivePathString(path string) (*ExtendedPrivateKey, error) {
	parsed, err := ParseDerivationPath(path)
	if err != nil {
		return nil, err
	}
	return k.DerivePath(parsed)
}

// PrivateKey returns the private key at this node. The key remains owned
// by the extended key: calling Zero on either wipes both.
func (k *ExtendedPrivateKey) PrivateKey() *PrivateKey {
	return k.key
}

// PublicKey returns the public key at this node.
func (k *ExtendedPrivateKey) PublicKey() *PublicKey {
	return k.key.PublicKey()
}

// ChainCode returns a copy of the 32-byte chain code.
func (k *ExtendedPrivateKey) ChainCode() [32]byte {
	return k.chainCode
}

// Depth returns the depth of this key in the derivation tree; the master
// key has depth 0.
func (k *ExtendedPrivateKey) Depth() uint8 {
	return k.depth
}

// ParentFingerprint returns the first four bytes of hash160 of the parent
// public key, or zeros for the master key.
func (k *ExtendedPrivateKey) ParentFingerprint() [4]byte {
	return k.parentFP
}

// ChildIndex returns the index this key was derived at, or 0 for the
// master key.
func (k *ExtendedPrivateKey) ChildIndex() uint32 {
	return k.childIndex
}

// Network returns the network this key serializes for.
func (k *ExtendedPrivateKey) Network() *Network {
	return k.network
}

// serialize produces the standard 78-byte extended key form with the given
// version bytes and 33-byte key data.
func (k *ExtendedPrivateKey) serialize(version [4]byte, keyData []byte) string {
	payload := make([]byte, 0, serializedKeyLen-4)
	payload = append(payload, k.depth)
	payload = append(payload, k.parentFP[:]...)
	payload = binary.BigEndian.AppendUint32(payload, k.childIndex)
	payload = append(payload, k.chainCode[:]...)
	payload = append(payload, keyData...)
	defer zeroBytes(payload)
	return Base58CheckEncodeRaw(version[:], payload)
}

// String returns the Base58Check xprv form of the key:
// version || depth || parent fingerprint || child index || chain code ||
// 0x00 || key scalar.
func (k *ExtendedPrivateKey) String() string {
	keyData := make([]byte, 0, 33)
	keyBytes := k.key.Bytes()
	keyData = append(keyData, 0x00)
	keyData = append(keyData, keyBytes...)
	zeroBytes(keyBytes)
	defer zeroBytes(keyData)
	return k.serialize(k.network.HDPrivateKeyID, keyData)
}

// PublicString returns the Base58Check xpub form of this node: the same
// layout as String with the compressed public key as key data. It reveals
// no private material, but note that an xpub together with any descendant
// private key exposes the whole subtree.
func (k *ExtendedPrivateKey) PublicString() string {
	return k.serialize(k.network.HDPublicKeyID, k.key.PublicKey().SerializeCompressed())
}

// NewExtendedKeyFromString parses the Base58Check xprv form of an extended
// private key for the given network. Extended public keys are rejected:
// this type always carries private material.
func NewExtendedKeyFromString(encoded string, network *Network) (*ExtendedPrivateKey, error) {
	data, err := Base58CheckDecodeRaw(encoded)
	if err != nil {
		return nil, err
	}
	defer zeroBytes(data)
	if len(data) != serializedKeyLen {
		return nil, fmt.Errorf("%w: extended key must decode to %d bytes, got %d",
			ErrInvalidLength, serializedKeyLen, len(data))
	}
	var version [4]byte
	copy(version[:], data[:4])
	if version != network.HDPrivateKeyID {
		return nil, fmt.Errorf("%w: unknown extended key version", ErrInvalidEncoding)
	}
	if data[45] != 0x00 {
		return nil, fmt.Errorf("%w: bad private key padding", ErrInvalidEncoding)
	}
	key, err := NewPrivateKeyFromBytes(data[46:78])
	if err != nil {
		return nil, err
	}
	result := &ExtendedPrivateKey{
		key:        key,
		depth:      data[4],
		childIndex: binary.BigEndian.Uint32(data[9:13]),
		network:    network,
	}
	copy(result.parentFP[:], data[5:9])
	copy(result.chainCode[:], data[13:45])
	return result, nil
}

// Zero overwrites the private key and chain code with zeros. The key must
// not be used after calling Zero.
func (k *ExtendedPrivateKey) Zero() {
	k.key.Zero()
	zeroBytes(k.chainCode[:])
}
