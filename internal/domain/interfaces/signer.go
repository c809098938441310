package interfaces

import domaintypes "sigcore/internal/domain/types"

// Signer holds private key material and produces signatures with it.
type Signer interface {
	PublicKey() domaintypes.PublicKey
	Sign(message []byte) domaintypes.Signature
}
