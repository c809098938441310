// Package keys manages the lifecycle of signing keys held in a KeyStore:
// creation from fresh entropy, a seed or a recovery phrase, import and export
// of keypair files, signing with a stored key, and verification.
//
// It enforces the passphrase policy and logs each operation with the address
// it touched. Secret material is never logged and is wiped after use.
package keys
