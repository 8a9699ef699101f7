package easywallet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/txscript"
)

// AddressFormat selects how a public key (or script) is turned into an
// address.
type AddressFormat int

const (
	// P2PKH is the legacy pay-to-pubkey-hash Base58Check format.
	P2PKH AddressFormat = iota
	// P2SH is the pay-to-script-hash Base58Check format.
	P2SH
	// P2WPKH is the native segwit v0 pay-to-witness-pubkey-hash format.
	P2WPKH
	// P2WSH is the native segwit v0 pay-to-witness-script-hash format.
	P2WSH
	// P2TR is the taproot (segwit v1) format.
	P2TR
	// NestedSegWit is a P2WPKH witness program wrapped in P2SH, spendable
	// by pre-segwit wallets.
	NestedSegWit
	// Ethereum is the 20-byte Keccak-256 account format with EIP-55
	// display casing.
	Ethereum
)

// String returns the format name.
func (f AddressFormat) String() string {
	switch f {
	case P2PKH:
		return "p2pkh"
	case P2SH:
		return "p2sh"
	case P2WPKH:
		return "p2wpkh"
	case P2WSH:
		return "p2wsh"
	case P2TR:
		return "p2tr"
	case NestedSegWit:
		return "p2sh-p2wpkh"
	case Ethereum:
		return "ethereum"
	}
	return "unknown"
}

// Address is a derived address: raw payload bytes plus their canonical text
// encoding. Addresses are computed on demand and never mutated.
type Address struct {
	format  AddressFormat
	network *Network // nil for Ethereum
	payload []byte
	encoded string
}

// NewAddress derives an address of the given format from a public key.
// Script-hash formats (P2SH, P2WSH) hash a script rather than a key; use
// NewP2SHAddress or NewP2WSHAddress for those.
func NewAddress(key *PublicKey, network *Network, format AddressFormat) (*Address, error) {
	switch format {
	case P2PKH:
		return NewP2PKHAddress(key, network), nil
	case P2WPKH:
		return NewP2WPKHAddress(key, network)
	case P2TR:
		return NewP2TRAddress(key, network)
	case NestedSegWit:
		return NewNestedSegWitAddress(key, network), nil
	case Ethereum:
		return NewEthereumAddress(key), nil
	case P2SH, P2WSH:
		return nil, fmt.Errorf("%w: %v requires a script, not a key",
			ErrInvalidAddress, format)
	}
	return nil, fmt.Errorf("%w: unknown format", ErrInvalidAddress)
}

// NewP2PKHAddress derives a legacy address from the hash160 of the public
// key, honoring the key's display preference (historic uncompressed keys
// yield different addresses than compressed ones).
func NewP2PKHAddress(key *PublicKey, network *Network) *Address {
	payload := key.Hash160()
	return &Address{
		format:  P2PKH,
		network: network,
		payload: payload,
		encoded: Base58CheckEncode(network.P2PKHPrefix, payload),
	}
}

// NewP2SHAddress derives a pay-to-script-hash address from a redeem script.
func NewP2SHAddress(redeemScript []byte, network *Network) *Address {
	payload := Hash160(redeemScript)
	return &Address{
		format:  P2SH,
		network: network,
		payload: payload,
		encoded: Base58CheckEncode(network.P2SHPrefix, payload),
	}
}

// NewP2WPKHAddress derives a native segwit v0 address. The witness program
// is the hash160 of the compressed public key; BIP-141 forbids
// uncompressed keys in witness programs, so the display preference is
// ignored here.
func NewP2WPKHAddress(key *PublicKey, network *Network) (*Address, error) {
	payload := Hash160(key.SerializeCompressed())
	encoded, err := SegWitEncode(network.Bech32HRP, 0, payload)
	if err != nil {
		return nil, err
	}
	return &Address{
		format:  P2WPKH,
		network: network,
		payload: payload,
		encoded: encoded,
	}, nil
}

// NewP2WSHAddress derives a native segwit v0 script address from a witness
// script. The witness program is the single SHA-256 of the script.
func NewP2WSHAddress(witnessScript []byte, network *Network) (*Address, error) {
	payload := Sha256(witnessScript)
	encoded, err := SegWitEncode(network.Bech32HRP, 0, payload)
	if err != nil {
		return nil, err
	}
	return &Address{
		format:  P2WSH,
		network: network,
		payload: payload,
		encoded: encoded,
	}, nil
}

// NewP2TRAddress derives a taproot address for key-path spending. The
// internal key is tweaked per BIP-341 with an empty script tree and
// serialized x-only as a 32-byte witness v1 program, encoded with bech32m.
func NewP2TRAddress(key *PublicKey, network *Network) (*Address, error) {
	taprootKey := txscript.ComputeTaprootKeyNoScript(key.key)
	payload := schnorr.SerializePubKey(taprootKey)
	encoded, err := SegWitEncode(network.Bech32HRP, 1, payload)
	if err != nil {
		return nil, err
	}
	return &Address{
		format:  P2TR,
		network: network,
		payload: payload,
		encoded: encoded,
	}, nil
}

// NewNestedSegWitAddress derives a P2WPKH-in-P2SH address: the BIP-141
// redeem script OP_0 <20-byte key hash>, wrapped in a regular P2SH
// address.
func NewNestedSegWitAddress(key *PublicKey, network *Network) *Address {
	redeemScript := make([]byte, 0, 22)
	redeemScript = append(redeemScript, 0x00, 0x14)
	redeemScript = append(redeemScript, Hash160(key.SerializeCompressed())...)
	payload := Hash160(redeemScript)
	return &Address{
		format:  NestedSegWit,
		network: network,
		payload: payload,
		encoded: Base58CheckEncode(network.P2SHPrefix, payload),
	}
}

// NewEthereumAddress derives the Ethereum address: the last 20 bytes of
// keccak256 over the uncompressed public key body (without the 0x04
// prefix). The canonical text form carries the EIP-55 checksum casing.
func NewEthereumAddress(key *PublicKey) *Address {
	payload := Keccak256(key.SerializeUncompressed()[1:])[12:]
	return &Address{
		format:  Ethereum,
		payload: payload,
		encoded: EthChecksumAddress(payload),
	}
}

// DecodeAddress parses the text form of an address on the given network.
// For Ethereum addresses pass nil as the network. Mixed-case Ethereum
// input must carry a valid EIP-55 checksum; all-lowercase input is
// accepted as unchecksummed.
func DecodeAddress(encoded string, network *Network) (*Address, error) {
	if strings.HasPrefix(encoded, "0x") || strings.HasPrefix(encoded, "0X") {
		return decodeEthereumAddress(encoded)
	}
	if network == nil {
		return nil, fmt.Errorf("%w: network required", ErrInvalidAddress)
	}
	if strings.HasPrefix(strings.ToLower(encoded), network.Bech32HRP+"1") {
		return decodeSegWitAddress(encoded, network)
	}
	return decodeBase58Address(encoded, network)
}

func decodeEthereumAddress(encoded string) (*Address, error) {
	payload, err := FromHex(encoded)
	if err != nil {
		return nil, err
	}
	if len(payload) != 20 {
		return nil, fmt.Errorf("%w: expected 20 bytes, got %d",
			ErrInvalidLength, len(payload))
	}
	canonical := EthChecksumAddress(payload)
	if encoded != canonical && encoded != strings.ToLower(canonical) {
		return nil, fmt.Errorf("%w: bad EIP-55 casing", ErrInvalidChecksum)
	}
	return &Address{format: Ethereum, payload: payload, encoded: canonical}, nil
}

func decodeSegWitAddress(encoded string, network *Network) (*Address, error) {
	hrp, version, program, err := SegWitDecode(encoded)
	if err != nil {
		return nil, err
	}
	if hrp != network.Bech32HRP {
		return nil, fmt.Errorf("%w: wrong network prefix %q", ErrInvalidAddress, hrp)
	}
	var format AddressFormat
	switch {
	case version == 0 && len(program) == 20:
		format = P2WPKH
	case version == 0 && len(program) == 32:
		format = P2WSH
	case version == 1 && len(program) == 32:
		format = P2TR
	default:
		return nil, fmt.Errorf("%w: witness version %d with %d-byte program",
			ErrInvalidAddress, version, len(program))
	}
	return &Address{
		format:  format,
		network: network,
		payload: program,
		encoded: encoded,
	}, nil
}

func decodeBase58Address(encoded string, network *Network) (*Address, error) {
	version, payload, err := Base58CheckDecode(encoded)
	if err != nil {
		return nil, err
	}
	if len(payload) != 20 {
		return nil, fmt.Errorf("%w: expected 20 bytes, got %d",
			ErrInvalidLength, len(payload))
	}
	var format AddressFormat
	switch version {
	case network.P2PKHPrefix:
		format = P2PKH
	case network.P2SHPrefix:
		format = P2SH
	default:
		return nil, fmt.Errorf("%w: unknown version byte 0x%02x",
			ErrInvalidAddress, version)
	}
	return &Address{
		format:  format,
		network: network,
		payload: payload,
		encoded: encoded,
	}, nil
}

// String returns the canonical text encoding of the address.
func (a *Address) String() string {
	return a.encoded
}

// Bytes returns a copy of the raw payload: a key or script hash for
// Bitcoin formats, the 20-byte account for Ethereum, or the 32-byte
// tweaked x-only key for taproot.
func (a *Address) Bytes() []byte {
	return append([]byte(nil), a.payload...)
}

// Format returns the address format.
func (a *Address) Format() AddressFormat {
	return a.format
}

// Network returns the network the address belongs to, or nil for Ethereum.
func (a *Address) Network() *Network {
	return a.network
}

// Equal reports whether two addresses are the same. Comparison uses the
// format, network and raw payload bytes, never the text encoding: EIP-55
// casing carries no semantic weight. Networks compare by value, so a
// caller-constructed Network with the same parameters matches the package
// constant.
func (a *Address) Equal(other *Address) bool {
	if other == nil || a.format != other.format || !bytes.Equal(a.payload, other.payload) {
		return false
	}
	if a.network == nil || other.network == nil {
		return a.network == other.network
	}
	return *a.network == *other.network
}
