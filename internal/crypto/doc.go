// Package crypto is the keypair and signature engine of sigcore.
//
// Contents
//
//   - Ed25519 key material: generation from a CSPRNG or a 32-byte seed,
//     import of 64-byte seed||public keypair bytes, signing, and explicit
//     export of secret material (Generate, FromSeed, FromKeypairBytes, Keypair)
//   - Strict signature verification that rejects malformed, non-canonical and
//     small-order encodings before evaluating the verification equation
//     (Verify, VerifySignature, Verifier)
//
// # Notes
//
// Signing uses the constant-time scalar multiplication of crypto/ed25519.
// Verification only touches public data and uses variable-time double scalar
// multiplication from filippo.io/edwards25519, as crypto/ed25519 itself does.
//
// Randomness is never taken from a clock. Generate reads from the io.Reader it
// is given and falls back to crypto/rand.Reader, looked up at call time, when
// that reader is nil.
//
// Nothing in this package logs.
package crypto
