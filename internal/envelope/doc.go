// Package envelope packs a message, its signature and the signer's public key
// into a detached bundle that can be written to a file and verified later by
// anyone holding the bundle.
//
// Two encodings are supported: JSON, with base58 key and signature and a
// base64 message, and msgpack with raw byte fields. Decoding checks every
// fixed size before any verification is attempted.
package envelope
