/*
Package easywallet ties together several other common packages and makes it
easy to perform the cryptographic operations behind Bitcoin- and
Ethereum-style wallets (all based on the secp256k1 curve).

These operations include:

-- Creating private keys, from a caller-supplied random source, raw bytes,
or WIF strings

-- Signing message hashes and verifying or recovering the signer with ECDSA

-- Deriving hierarchical deterministic key trees (BIP-32) and parsing
derivation paths

-- Generating and restoring mnemonic phrases and seeds (BIP-39)

-- Deriving addresses in the common formats: legacy and P2SH Base58Check,
SegWit bech32, Taproot bech32m, and EIP-55 checksummed Ethereum addresses

Secret key material is always owned by the caller: private keys and extended
keys expose a Zero method that wipes the backing bytes, and every
constructor that fails wipes whatever intermediate material it produced.

See the examples for more information.
*/
package easywallet
