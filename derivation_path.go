package easywallet

import (
	"fmt"
	"strconv"
	"strings"
)

// HardenedKeyStart is the index at which hardened derivation begins.
// Indices at or above this value derive hardened children.
const HardenedKeyStart uint32 = 0x80000000 // 2^31

// DerivationPath represents the computer friendly version of a hierarchical
// deterministic wallet account derivation path: an ordered sequence of
// child indices, each either hardened (index >= 2^31) or normal.
type DerivationPath []uint32

// DefaultBitcoinDerivationPath is the BIP-44 path of the first Bitcoin
// mainnet account's first external key, m/44'/0'/0'/0/0.
var DefaultBitcoinDerivationPath = DerivationPath{
	HardenedKeyStart + 44, HardenedKeyStart + 0, HardenedKeyStart + 0, 0, 0}

// DefaultEthereumDerivationPath is the BIP-44 path of the first Ethereum
// account, m/44'/60'/0'/0/0.
var DefaultEthereumDerivationPath = DerivationPath{
	HardenedKeyStart + 44, HardenedKeyStart + 60, HardenedKeyStart + 0, 0, 0}

// ParseDerivationPath parses the human-readable form of a derivation path,
// e.g. "m/44'/60'/0'/0/0". The leading "m" is optional, and hardened
// segments may be marked with an apostrophe or with "h"/"H".
func ParseDerivationPath(path string) (DerivationPath, error) {
	segments := strings.Split(path, "/")
	if len(segments) > 0 && strings.TrimSpace(segments[0]) == "m" {
		// A bare "m" is the master key itself.
		segments = segments[1:]
	}
	result := make(DerivationPath, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		hardened := false
		if strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h") ||
			strings.HasSuffix(segment, "H") {
			hardened = true
			segment = segment[:len(segment)-1]
		}
		index, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad segment %q", ErrInvalidDerivationPath, segment)
		}
		if index >= uint64(HardenedKeyStart) {
			if hardened {
				return nil, fmt.Errorf("%w: segment %q is already hardened",
					ErrInvalidDerivationPath, segment)
			}
			return nil, fmt.Errorf("%w: index %d out of range",
				ErrInvalidDerivationPath, index)
		}
		if hardened {
			index += uint64(HardenedKeyStart)
		}
		result = append(result, uint32(index))
	}
	return result, nil
}

// String returns the canonical human-readable form of the path, with a
// leading "m" and apostrophes marking hardened segments.
func (path DerivationPath) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, index := range path {
		sb.WriteString("/")
		if index >= HardenedKeyStart {
			sb.WriteString(strconv.FormatUint(uint64(index-HardenedKeyStart), 10))
			sb.WriteString("'")
		} else {
			sb.WriteString(strconv.FormatUint(uint64(index), 10))
		}
	}
	return sb.String()
}
