package easywallet

import "fmt"

// Malformed input errors. Adversarial input is rejected with one of these,
// never retried.
var ErrInvalidLength = fmt.Errorf("invalid length")
var ErrInvalidEncoding = fmt.Errorf("invalid encoding")
var ErrInvalidChecksum = fmt.Errorf("invalid checksum")
var ErrInvalidDerivationPath = fmt.Errorf("invalid derivation path")
var ErrInvalidMnemonic = fmt.Errorf("invalid mnemonic")
var ErrInvalidWord = fmt.Errorf("invalid word in mnemonic")
var ErrInvalidEntropyLength = fmt.Errorf("invalid entropy length")
var ErrInvalidAddress = fmt.Errorf("invalid address")

// Cryptographic validity errors.
var ErrInvalidPrivateKey = fmt.Errorf("invalid private key")
var ErrInvalidPublicKey = fmt.Errorf("invalid public key")
var ErrInvalidSignature = fmt.Errorf("invalid signature")

// ErrInvalidChild is returned when a BIP-32 child index produces an invalid
// key (the HMAC left half is not less than the curve order, or the child
// scalar is zero). Per BIP-32 the caller moves on to the next index; this
// library fails fast rather than skipping ahead silently, so that a given
// path always means the same key.
var ErrInvalidChild = fmt.Errorf("the derived child key is invalid")

// ErrDeriveBeyondMaxDepth is returned when deriving a child would push the
// extended key past the maximum BIP-32 depth of 255.
var ErrDeriveBeyondMaxDepth = fmt.Errorf("cannot derive a key beyond the maximum depth")
