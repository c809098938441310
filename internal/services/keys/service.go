package keys

import (
	"io"

	"github.com/sirupsen/logrus"

	"sigcore/internal/crypto"
	"sigcore/internal/domain"
	"sigcore/internal/mnemonic"
	"sigcore/internal/store"
)

// Options tunes a Service.
type Options struct {
	// KDF seals new keystore records. Defaults to scrypt.
	KDF domain.KDF
	// StrictPassphrase turns on the length and character-class policy.
	StrictPassphrase bool
	// Rand is the entropy source for new keys and phrases. Nil means crypto/rand.
	Rand io.Reader
}

// Service manages signing keys using a backing store.
type Service struct {
	store  domain.KeyStore
	log    logrus.FieldLogger
	kdf    domain.KDF
	strict bool
	rand   io.Reader
}

// New returns a key service backed by the given store.
func New(s domain.KeyStore, log logrus.FieldLogger, opts Options) *Service {
	if opts.KDF == "" {
		opts.KDF = domain.KDFScrypt
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Service{
		store:  s,
		log:    log.WithField("component", "keys"),
		kdf:    opts.KDF,
		strict: opts.StrictPassphrase,
		rand:   opts.Rand,
	}
}

// Create stores a new key. With a nil seed the key is random; otherwise the
// seed must be exactly 32 bytes.
func (s *Service) Create(passphrase string, seed []byte) (domain.GeneratedKey, error) {
	if err := checkPassphrase(passphrase, s.strict); err != nil {
		return domain.GeneratedKey{}, err
	}
	var (
		kp  *crypto.Keypair
		err error
	)
	if seed == nil {
		kp, err = crypto.Generate(s.rand)
	} else {
		kp, err = crypto.FromSeed(seed)
	}
	if err != nil {
		s.log.WithField("op", "create").WithError(err).Warn("key generation failed")
		return domain.GeneratedKey{}, err
	}
	info, err := s.save("create", passphrase, kp)
	return domain.GeneratedKey{Info: info}, err
}

// CreateFromMnemonic generates a recovery phrase of the given length, derives
// a key from it under mnemonicPassphrase and stores it. The phrase is
// returned once and is not persisted.
func (s *Service) CreateFromMnemonic(
	passphrase string,
	mnemonicPassphrase string,
	words int,
) (domain.GeneratedKey, error) {
	if err := checkPassphrase(passphrase, s.strict); err != nil {
		return domain.GeneratedKey{}, err
	}
	if words == 0 {
		words = mnemonic.DefaultWords
	}
	phrase, err := mnemonic.Generate(s.rand, words)
	if err != nil {
		return domain.GeneratedKey{}, err
	}
	kp, err := mnemonic.Keypair(phrase, mnemonicPassphrase)
	if err != nil {
		return domain.GeneratedKey{}, err
	}
	info, err := s.save("create-mnemonic", passphrase, kp)
	if err != nil {
		return domain.GeneratedKey{}, err
	}
	return domain.GeneratedKey{Info: info, Phrase: phrase}, nil
}

// Recover derives the key for an existing phrase and stores it.
func (s *Service) Recover(
	phrase string,
	mnemonicPassphrase string,
	passphrase string,
) (domain.GeneratedKey, error) {
	if err := checkPassphrase(passphrase, s.strict); err != nil {
		return domain.GeneratedKey{}, err
	}
	kp, err := mnemonic.Keypair(phrase, mnemonicPassphrase)
	if err != nil {
		s.log.WithField("op", "recover").WithError(err).Warn("phrase rejected")
		return domain.GeneratedKey{}, err
	}
	info, err := s.save("recover", passphrase, kp)
	if err != nil {
		return domain.GeneratedKey{}, err
	}
	return domain.GeneratedKey{Info: info, Phrase: mnemonic.Normalize(phrase)}, nil
}

// Import stores the keypair held in a plain keypair file.
func (s *Service) Import(path string, passphrase string) (domain.KeyInfo, error) {
	if err := checkPassphrase(passphrase, s.strict); err != nil {
		return domain.KeyInfo{}, err
	}
	raw, err := store.ReadKeypairFile(path)
	if err != nil {
		return domain.KeyInfo{}, err
	}
	kp, err := crypto.FromKeypairBytes(raw[:])
	clear(raw[:])
	if err != nil {
		return domain.KeyInfo{}, err
	}
	return s.save("import", passphrase, kp)
}

// Export writes the stored key to path as an unencrypted keypair file.
func (s *Service) Export(address domain.Address, passphrase string, path string) error {
	raw, err := s.store.LoadKey(address, passphrase)
	if err != nil {
		return err
	}
	if err := store.WriteKeypairFile(path, raw); err != nil {
		clear(raw[:])
		return err
	}
	clear(raw[:])
	s.log.WithFields(logrus.Fields{"op": "export", "address": address}).
		Warn("wrote unencrypted keypair file")
	return nil
}

// Sign signs message with the stored key for address.
func (s *Service) Sign(
	address domain.Address,
	passphrase string,
	message []byte,
) (domain.PublicKey, domain.Signature, error) {
	raw, err := s.store.LoadKey(address, passphrase)
	if err != nil {
		return domain.PublicKey{}, domain.Signature{}, err
	}
	kp, err := crypto.FromKeypairBytes(raw[:])
	clear(raw[:])
	if err != nil {
		return domain.PublicKey{}, domain.Signature{}, err
	}
	defer kp.Destroy()

	sig := kp.Sign(message)
	s.log.WithFields(logrus.Fields{
		"op":      "sign",
		"address": address,
		"bytes":   len(message),
	}).Info("message signed")
	return kp.PublicKey(), sig, nil
}

// Verify checks sig over message with pub. It needs no stored key.
func (s *Service) Verify(
	pub domain.PublicKey,
	message []byte,
	sig domain.Signature,
) (bool, error) {
	ok, err := crypto.VerifySignature(pub, message, sig)
	entry := s.log.WithFields(logrus.Fields{"op": "verify", "address": pub.Address()})
	switch {
	case err != nil:
		entry.WithError(err).Warn("malformed input")
	case !ok:
		entry.Info("signature invalid")
	default:
		entry.Debug("signature valid")
	}
	return ok, err
}

// List returns the stored keys.
func (s *Service) List() ([]domain.KeyInfo, error) { return s.store.ListKeys() }

// Remove deletes the stored key for address.
func (s *Service) Remove(address domain.Address) error {
	if err := s.store.DeleteKey(address); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"op": "remove", "address": address}).Info("key removed")
	return nil
}

// save seals kp in the store and destroys it.
func (s *Service) save(op string, passphrase string, kp *crypto.Keypair) (domain.KeyInfo, error) {
	defer kp.Destroy()
	info, err := s.store.SaveKey(passphrase, s.kdf, kp.ExportKeypairBytes())
	fields := logrus.Fields{"op": op, "address": kp.Address(), "kdf": s.kdf}
	if err != nil {
		s.log.WithFields(fields).WithError(err).Error("storing key failed")
		return domain.KeyInfo{}, err
	}
	s.log.WithFields(fields).Info("key stored")
	return info, nil
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
