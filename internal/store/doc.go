// Package store provides file-based persistence for sigcore keys.
//
// KeyFileStore implements domain.KeyStore. Each key lives in its own JSON
// record under <home>/keys/<address>.json, sealed with ChaCha20-Poly1305 under
// a key derived from the passphrase with scrypt or Argon2id. The address is
// bound as additional data so records cannot be swapped between files. All
// methods are concurrency-safe via internal locking and files are written
// atomically with mode 0600.
//
// WriteKeypairFile and ReadKeypairFile handle the plain keypair file format,
// a JSON array of the 64 seed||public bytes. Those files are not encrypted.
package store
