package easywallet

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/assert"
)

func Test_Encoding_HexRoundtrip(t *testing.T) {
	assert := assert.New(t)

	original := []byte{0xde, 0xad, 0xbe, 0xef}
	encoded := ToHex(original)
	assert.Equal("deadbeef", encoded)
	decoded, err := FromHex(encoded)
	assert.NoError(err)
	assert.Equal(original, decoded)
}

func Test_Encoding_HexWithPrefix(t *testing.T) {
	assert := assert.New(t)

	decoded, err := FromHex("0xdeadbeef")
	assert.NoError(err)
	assert.Equal([]byte{0xde, 0xad, 0xbe, 0xef}, decoded)
}

func Test_Encoding_HexErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := FromHex("abc")
	assert.ErrorIs(err, ErrInvalidEncoding)
	_, err = FromHex("zz")
	assert.ErrorIs(err, ErrInvalidEncoding)
}

func Test_Encoding_Base58CheckRoundtrip(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 100; i++ {
		payload := make([]byte, 1+rng.Intn(64))
		rng.Read(payload)
		version := byte(rng.Intn(256))

		encoded := Base58CheckEncode(version, payload)
		gotVersion, gotPayload, err := Base58CheckDecode(encoded)
		assert.NoError(err)
		assert.Equal(version, gotVersion)
		assert.Equal(payload, gotPayload)
	}
}

func Test_Encoding_Base58CheckVector(t *testing.T) {
	assert := assert.New(t)

	// The legacy address of the generator-point key.
	version, payload, err := Base58CheckDecode("1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH")
	assert.NoError(err)
	assert.Equal(byte(0x00), version)
	assert.Equal("751e76e8199196d454941c45d1b3a323f1433bd6", ToHex(payload))
}

func Test_Encoding_Base58CheckCorruption(t *testing.T) {
	assert := assert.New(t)

	const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	encoded := Base58CheckEncode(0x00, []byte("some payload bytes"))

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 100; i++ {
		pos := rng.Intn(len(encoded))
		replacement := alphabet[rng.Intn(len(alphabet))]
		if encoded[pos] == replacement {
			continue
		}
		corrupted := encoded[:pos] + string(replacement) + encoded[pos+1:]
		_, _, err := Base58CheckDecode(corrupted)
		assert.Error(err, "corrupted string %q accepted", corrupted)
		assert.True(errors.Is(err, ErrInvalidChecksum) || errors.Is(err, ErrInvalidEncoding) ||
			errors.Is(err, ErrInvalidLength))
	}
}

func Test_Encoding_Base58CheckTooShort(t *testing.T) {
	assert := assert.New(t)

	_, _, err := Base58CheckDecode("1")
	assert.ErrorIs(err, ErrInvalidLength)
}

func Test_Encoding_SegWitV0(t *testing.T) {
	assert := assert.New(t)

	program, err := FromHex("751e76e8199196d454941c45d1b3a323f1433bd6")
	assert.NoError(err)
	encoded, err := SegWitEncode("bc", 0, program)
	assert.NoError(err)
	assert.Equal("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", encoded)

	hrp, version, decoded, err := SegWitDecode(encoded)
	assert.NoError(err)
	assert.Equal("bc", hrp)
	assert.Equal(byte(0), version)
	assert.Equal(program, decoded)
}

func Test_Encoding_SegWitV1UsesBech32m(t *testing.T) {
	assert := assert.New(t)

	// BIP-350 example: witness v1 program equal to the generator x
	// coordinate.
	program, err := FromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	assert.NoError(err)
	encoded, err := SegWitEncode("bc", 1, program)
	assert.NoError(err)
	assert.Equal("bc1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqzk5jj0", encoded)

	hrp, version, decoded, err := SegWitDecode(encoded)
	assert.NoError(err)
	assert.Equal("bc", hrp)
	assert.Equal(byte(1), version)
	assert.Equal(program, decoded)
}

func Test_Encoding_SegWitVariantMismatch(t *testing.T) {
	assert := assert.New(t)

	// A v1 program under the bech32 (not bech32m) checksum must be
	// rejected, and vice versa. Build the wrong-variant strings through
	// the raw codec so their checksums are internally valid.
	v1Program, _ := FromHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	converted, err := bech32.ConvertBits(v1Program, 8, 5, true)
	assert.NoError(err)
	v1UnderBech32, err := bech32.Encode("bc", append([]byte{1}, converted...))
	assert.NoError(err)
	_, _, _, err = SegWitDecode(v1UnderBech32)
	assert.ErrorIs(err, ErrInvalidEncoding)

	v0Program, _ := FromHex("751e76e8199196d454941c45d1b3a323f1433bd6")
	converted, err = bech32.ConvertBits(v0Program, 8, 5, true)
	assert.NoError(err)
	v0UnderBech32m, err := bech32.EncodeM("bc", append([]byte{0}, converted...))
	assert.NoError(err)
	_, _, _, err = SegWitDecode(v0UnderBech32m)
	assert.ErrorIs(err, ErrInvalidEncoding)
}

func Test_Encoding_Bech32Corruption(t *testing.T) {
	assert := assert.New(t)

	const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	program, _ := FromHex("751e76e8199196d454941c45d1b3a323f1433bd6")
	encoded, err := SegWitEncode("bc", 0, program)
	assert.NoError(err)

	// Any single-character substitution in the data part must be caught
	// by the checksum.
	separator := strings.LastIndex(encoded, "1")
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		pos := separator + 1 + rng.Intn(len(encoded)-separator-1)
		replacement := charset[rng.Intn(len(charset))]
		if encoded[pos] == replacement {
			continue
		}
		corrupted := encoded[:pos] + string(replacement) + encoded[pos+1:]
		_, _, _, err := SegWitDecode(corrupted)
		assert.ErrorIs(err, ErrInvalidEncoding, "corrupted string %q accepted", corrupted)
	}
}

func Test_Encoding_SegWitErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := SegWitEncode("bc", 17, []byte{1, 2, 3})
	assert.ErrorIs(err, ErrInvalidEncoding)
	_, err = SegWitEncode("bc", 0, []byte{1})
	assert.ErrorIs(err, ErrInvalidLength)
	_, _, _, err = SegWitDecode("not a segwit address")
	assert.ErrorIs(err, ErrInvalidEncoding)
}

func Test_Encoding_EthChecksumAddress(t *testing.T) {
	assert := assert.New(t)

	// Vectors from EIP-55.
	for _, expected := range []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	} {
		raw, err := FromHex(strings.ToLower(expected))
		assert.NoError(err)
		assert.Equal(expected, EthChecksumAddress(raw))
	}
}
