package easywallet

import (
	"crypto/sha512"
	"fmt"
	"io"
	"math/big"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	seedIterations = 2048
	seedSize       = 64
	wordBits       = 11
)

// Mnemonic is a BIP-39 mnemonic: entropy plus its phrase encoding in some
// wordlist. Entropy length and word count correspond one to one
// (128 bits -> 12 words, up to 256 bits -> 24 words).
type Mnemonic struct {
	entropy  []byte
	phrase   string
	wordlist Wordlist
}

// NewMnemonic generates a mnemonic of the given entropy strength in bits,
// one of 128, 160, 192, 224 or 256, drawing entropy from rand. The caller
// must supply a cryptographically secure source.
func NewMnemonic(rand io.Reader, bits int, wordlist Wordlist) (*Mnemonic, error) {
	switch bits {
	case 128, 160, 192, 224, 256:
	default:
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidEntropyLength, bits)
	}
	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(rand, entropy); err != nil {
		return nil, fmt.Errorf("failed to read entropy: %w", err)
	}
	return NewMnemonicFromEntropy(entropy, wordlist)
}

// NewMnemonicFromEntropy creates the mnemonic encoding the given entropy,
// which must be 16, 20, 24, 28 or 32 bytes.
func NewMnemonicFromEntropy(entropy []byte, wordlist Wordlist) (*Mnemonic, error) {
	switch len(entropy) {
	case 16, 20, 24, 28, 32:
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidEntropyLength, len(entropy))
	}

	// Append the high entropy_bits/32 bits of sha256(entropy), then chop
	// the result into 11-bit wordlist indices.
	checksumBits := uint(len(entropy) / 4)
	value := new(big.Int).SetBytes(entropy)
	value.Lsh(value, checksumBits)
	value.Or(value, big.NewInt(int64(Sha256(entropy)[0]>>(8-checksumBits))))

	wordCount := (len(entropy)*8 + int(checksumBits)) / wordBits
	words := make([]string, wordCount)
	mask := big.NewInt(1<<wordBits - 1)
	chunk := new(big.Int)
	for i := wordCount - 1; i >= 0; i-- {
		chunk.And(value, mask)
		word, ok := wordlist.Word(int(chunk.Int64()))
		if !ok {
			return nil, fmt.Errorf("%w: index %d", ErrInvalidWord, chunk.Int64())
		}
		words[i] = word
		value.Rsh(value, wordBits)
	}

	result := &Mnemonic{
		entropy:  append([]byte(nil), entropy...),
		phrase:   strings.Join(words, " "),
		wordlist: wordlist,
	}
	return result, nil
}

// NewMnemonicFromPhrase restores a mnemonic from its phrase, looking every
// word up in the wordlist and verifying the checksum. Unknown words return
// ErrInvalidWord; a bad word count or checksum returns ErrInvalidMnemonic.
func NewMnemonicFromPhrase(phrase string, wordlist Wordlist) (*Mnemonic, error) {
	// BIP-39 phrases are NFKD-normalized before any processing; Japanese
	// phrases may arrive composed (NFC) or joined with ideographic spaces.
	words := strings.Fields(norm.NFKD.String(phrase))
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return nil, fmt.Errorf("%w: %d words", ErrInvalidMnemonic, len(words))
	}

	value := new(big.Int)
	for _, word := range words {
		index, ok := wordlist.Index(word)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, word)
		}
		value.Lsh(value, wordBits)
		value.Or(value, big.NewInt(int64(index)))
	}

	totalBits := len(words) * wordBits
	checksumBits := uint(totalBits / 33)
	entropyBytes := (totalBits - int(checksumBits)) / 8

	checksum := new(big.Int).And(value, big.NewInt(int64(1)<<checksumBits-1))
	entropy := make([]byte, entropyBytes)
	value.Rsh(value, checksumBits).FillBytes(entropy)

	expected := int64(Sha256(entropy)[0] >> (8 - checksumBits))
	if checksum.Int64() != expected {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidMnemonic)
	}

	return &Mnemonic{
		entropy:  entropy,
		phrase:   strings.Join(words, " "),
		wordlist: wordlist,
	}, nil
}

// Phrase returns the space-separated mnemonic phrase.
func (m *Mnemonic) Phrase() string {
	return m.phrase
}

// Entropy returns a copy of the entropy bytes.
func (m *Mnemonic) Entropy() []byte {
	return append([]byte(nil), m.entropy...)
}

// Seed derives the 64-byte BIP-39 seed for this mnemonic with an optional
// passphrase, using PBKDF2-HMAC-SHA512 over the NFKD-normalized phrase.
// The result is the input to NewMasterKey.
func (m *Mnemonic) Seed(passphrase string) []byte {
	password := norm.NFKD.String(m.phrase)
	salt := "mnemonic" + norm.NFKD.String(passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), seedIterations, seedSize, sha512.New)
}
