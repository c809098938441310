// Package mnemonic derives signing keys from BIP39 recovery phrases.
//
// A phrase is generated from fresh entropy with the English wordlist. The key
// seed is the first 32 bytes of PBKDF2-HMAC-SHA512 over the phrase with salt
// "mnemonic"+passphrase, 2048 rounds, both inputs NFKD-normalised. The same
// phrase and passphrase therefore always recover the same keypair.
package mnemonic
