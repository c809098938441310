package interfaces

import domaintypes "sigcore/internal/domain/types"

// KeyStore persists keypairs sealed under a passphrase, one record per address.
type KeyStore interface {
	SaveKey(
		passphrase string,
		kdf domaintypes.KDF,
		keypair domaintypes.KeypairBytes,
	) (domaintypes.KeyInfo, error)
	LoadKey(address domaintypes.Address, passphrase string) (domaintypes.KeypairBytes, error)
	ListKeys() ([]domaintypes.KeyInfo, error)
	DeleteKey(address domaintypes.Address) error
}
