package easywallet

import (
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Sha256 computes the SHA-256 hash of data.
func Sha256(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// Hash256 does two rounds of SHA256 hashing.
func Hash256(data []byte) []byte {
	h := sha256.Sum256(data)
	h1 := sha256.Sum256(h[:])
	return h1[:]
}

// Calculate the hash of hasher over buf.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Ripemd160 computes the RIPEMD-160 hash of data.
func Ripemd160(data []byte) []byte {
	return calcHash(data, ripemd160.New())
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	return calcHash(calcHash(buf, sha256.New()), ripemd160.New())
}

// Keccak256 computes the legacy Keccak-256 hash of data, as used by
// Ethereum (not the same as NIST SHA3-256).
func Keccak256(data []byte) []byte {
	return calcHash(data, sha3.NewLegacyKeccak256())
}
