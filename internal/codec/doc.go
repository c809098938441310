// Package codec converts keys and signatures between their raw byte form and
// their text forms.
//
// Base58 uses the Bitcoin alphabet, which is also the account address
// alphabet of the target chain, with no checksum. Empty text and characters
// outside the alphabet fail with domain.ErrInvalidEncoding. The typed
// decoders also fail with it when the text decodes to the wrong size, so
// truncated or padded text is never accepted as a key or signature.
//
// Base64 (standard alphabet, padded, strict) is provided for transporting
// arbitrary message bytes in JSON documents.
package codec
