// Package boundary is the narrow call surface an embedding host uses.
//
// Every function takes owned byte slices and returns freshly allocated ones;
// nothing here keeps a reference to caller memory after it returns. Fixed
// sizes are enforced exactly: 32 bytes for seeds and keys, 64 for signatures.
// Results marshal to camelCase JSON with byte fields as base64.
package boundary
