package easywallet

// Network holds the constants that distinguish one Bitcoin-style network
// from another: address version bytes, the segwit human-readable part, WIF
// and extended key prefixes, and the BIP-44 coin type. Networks are
// read-only configuration; the core never mutates them.
type Network struct {
	Name string

	// Address encoding magic.
	P2PKHPrefix byte
	P2SHPrefix  byte
	WIFPrefix   byte
	Bech32HRP   string

	// BIP-32 extended key version bytes.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP-44 coin type.
	CoinType uint32
}

// EthereumNetwork identifies an Ethereum-style chain. Ethereum addresses
// are network-independent; the chain id only matters for transaction
// signing, and the coin type for HD derivation paths.
type EthereumNetwork struct {
	Name     string
	ChainID  uint64
	CoinType uint32
}

var BitcoinMainnet = &Network{
	Name:           "mainnet",
	P2PKHPrefix:    0x00,
	P2SHPrefix:     0x05,
	WIFPrefix:      0x80,
	Bech32HRP:      "bc",
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // xprv
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // xpub
	CoinType:       0,
}

var BitcoinTestnet = &Network{
	Name:           "testnet3",
	P2PKHPrefix:    0x6f,
	P2SHPrefix:     0xc4,
	WIFPrefix:      0xef,
	Bech32HRP:      "tb",
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // tpub
	CoinType:       1,
}

var EthereumMainnet = &EthereumNetwork{
	Name:     "mainnet",
	ChainID:  1,
	CoinType: 60,
}

var EthereumSepolia = &EthereumNetwork{
	Name:     "sepolia",
	ChainID:  11155111,
	CoinType: 1,
}
