package easywallet

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// ToHex encodes bytes as a lowercase hexadecimal string, without a prefix.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes a hexadecimal string, with or without the "0x" prefix.
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}

// Base58CheckEncodeRaw encodes version followed by payload in Base58Check
// format: Base58(version || payload || checksum), where the checksum is the
// first four bytes of the double SHA-256 hash of version || payload. The
// version may be more than one byte (extended keys use four).
func Base58CheckEncodeRaw(version, payload []byte) string {
	data := bytes.Join([][]byte{version, payload}, nil)
	checksum := Hash256(data)[:4]
	return base58.Encode(bytes.Join([][]byte{data, checksum}, nil))
}

// Base58CheckDecodeRaw decodes a Base58Check string and verifies its
// checksum, returning everything before the checksum (version included).
func Base58CheckDecodeRaw(encoded string) ([]byte, error) {
	data := base58.Decode(encoded)
	if len(data) == 0 && encoded != "" {
		return nil, fmt.Errorf("%w: not a base58 string", ErrInvalidEncoding)
	}
	if len(data) < 5 {
		return nil, fmt.Errorf("%w: expected at least 5 bytes, got %d",
			ErrInvalidLength, len(data))
	}
	payload := data[:len(data)-4]
	checksum := data[len(data)-4:]
	if !bytes.Equal(checksum, Hash256(payload)[:4]) {
		return nil, ErrInvalidChecksum
	}
	return payload, nil
}

// Base58CheckEncode encodes a payload with a single version byte in
// Base58Check format, as used by legacy Bitcoin addresses and WIF.
func Base58CheckEncode(version byte, payload []byte) string {
	return Base58CheckEncodeRaw([]byte{version}, payload)
}

// Base58CheckDecode decodes a Base58Check string with a single version
// byte, returning the version and the payload.
func Base58CheckDecode(encoded string) (byte, []byte, error) {
	data, err := Base58CheckDecodeRaw(encoded)
	if err != nil {
		return 0, nil, err
	}
	return data[0], data[1:], nil
}

// SegWitEncode encodes a witness version and program as a segwit address.
// Witness version 0 uses bech32, versions 1 and up use bech32m; getting
// this wrong produces addresses other wallets reject, so the variant is
// chosen here and never by the caller.
func SegWitEncode(hrp string, version byte, program []byte) (string, error) {
	if version > 16 {
		return "", fmt.Errorf("%w: witness version %d", ErrInvalidEncoding, version)
	}
	if len(program) < 2 || len(program) > 40 {
		return "", fmt.Errorf("%w: witness program must be 2 to 40 bytes, got %d",
			ErrInvalidLength, len(program))
	}
	converted, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	data := append([]byte{version}, converted...)
	if version == 0 {
		return bech32.Encode(hrp, data)
	}
	return bech32.EncodeM(hrp, data)
}

// SegWitDecode decodes a segwit address, returning the human-readable part,
// the witness version and the witness program. The checksum variant must
// match the witness version (bech32 for version 0, bech32m otherwise).
func SegWitDecode(encoded string) (string, byte, []byte, error) {
	hrp, data, bech32version, err := bech32.DecodeGeneric(encoded)
	if err != nil {
		return "", 0, nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(data) == 0 {
		return "", 0, nil, fmt.Errorf("%w: empty payload", ErrInvalidEncoding)
	}
	version := data[0]
	if version == 0 && bech32version != bech32.Version0 {
		return "", 0, nil, fmt.Errorf("%w: witness version 0 requires bech32",
			ErrInvalidEncoding)
	}
	if version > 0 && bech32version != bech32.VersionM {
		return "", 0, nil, fmt.Errorf("%w: witness version %d requires bech32m",
			ErrInvalidEncoding, version)
	}
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return "", 0, nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return hrp, version, program, nil
}

// EthChecksumAddress encodes a raw 20-byte Ethereum address with the
// EIP-55 mixed-case checksum. Each alphabetic character of the lowercase
// hex form is uppercased when the corresponding nibble of
// keccak256(lowercase hex) is 8 or more.
func EthChecksumAddress(address []byte) string {
	hexAddr := ToHex(address)
	hash := Keccak256([]byte(hexAddr))

	var sb strings.Builder
	sb.Grow(len(hexAddr) + 2)
	sb.WriteString("0x")
	for i := 0; i < len(hexAddr); i++ {
		c := hexAddr[i]
		if c >= 'a' && c <= 'f' {
			nibble := hash[i/2] >> 4
			if i%2 == 1 {
				nibble = hash[i/2] & 0x0f
			}
			if nibble >= 8 {
				c = c - 'a' + 'A'
			}
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
