package interfaces

import domaintypes "sigcore/internal/domain/types"

// KeyService creates, stores and uses signing keys on behalf of the CLI.
type KeyService interface {
	Create(passphrase string, seed []byte) (domaintypes.GeneratedKey, error)
	CreateFromMnemonic(
		passphrase string,
		mnemonicPassphrase string,
		words int,
	) (domaintypes.GeneratedKey, error)
	Recover(
		phrase string,
		mnemonicPassphrase string,
		passphrase string,
	) (domaintypes.GeneratedKey, error)
	Import(path string, passphrase string) (domaintypes.KeyInfo, error)
	Export(address domaintypes.Address, passphrase string, path string) error
	Sign(
		address domaintypes.Address,
		passphrase string,
		message []byte,
	) (domaintypes.PublicKey, domaintypes.Signature, error)
	Verify(
		pub domaintypes.PublicKey,
		message []byte,
		sig domaintypes.Signature,
	) (bool, error)
	List() ([]domaintypes.KeyInfo, error)
	Remove(address domaintypes.Address) error
}
