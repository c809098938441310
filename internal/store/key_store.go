package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"sigcore/internal/codec"
	"sigcore/internal/crypto"
	"sigcore/internal/domain"
	"sigcore/internal/util/memzero"
)

const (
	// The current keystore record format version.
	keystoreFormatVersion = 1

	keysDir      = "keys"
	recordSuffix = ".json"
	recordMode   = 0o600
)

// record is the on-disk JSON structure of one sealed key.
type record struct {
	Version int            `json:"version"`
	ID      string         `json:"id"`
	Address domain.Address `json:"address"`
	Created time.Time      `json:"created"`
	KDF     domain.KDF     `json:"kdf"`
	Params  KDFParams      `json:"kdfparams"`
	Salt    []byte         `json:"salt"`
	Cipher  []byte         `json:"cipher"`
}

func (r record) info() domain.KeyInfo {
	return domain.KeyInfo{ID: r.ID, Address: r.Address, KDF: r.KDF, Created: r.Created}
}

// Option configures a KeyFileStore.
type Option func(*KeyFileStore)

// WithKDFParams overrides the parameters used when sealing with kdf.
func WithKDFParams(kdf domain.KDF, p KDFParams) Option {
	return func(s *KeyFileStore) { s.params[kdf] = p }
}

// WithClock sets the time source for record creation stamps.
func WithClock(now func() time.Time) Option {
	return func(s *KeyFileStore) { s.now = now }
}

// KeyFileStore persists sealed keypairs, one file per address.
type KeyFileStore struct {
	dir    string
	mu     sync.Mutex
	params map[domain.KDF]KDFParams
	now    func() time.Time
}

// NewKeyFileStore returns a KeyFileStore rooted at home.
func NewKeyFileStore(home string, opts ...Option) *KeyFileStore {
	s := &KeyFileStore{
		dir: filepath.Join(home, keysDir),
		params: map[domain.KDF]KDFParams{
			domain.KDFScrypt:   DefaultScryptParams(),
			domain.KDFArgon2id: DefaultArgon2Params(),
		},
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SaveKey seals keypair under passphrase. An existing record for the same
// address is replaced.
func (s *KeyFileStore) SaveKey(
	passphrase string,
	kdf domain.KDF,
	keypair domain.KeypairBytes,
) (domain.KeyInfo, error) {
	if passphrase == "" {
		return domain.KeyInfo{}, errors.New("empty passphrase")
	}
	params, ok := s.params[kdf]
	if !ok {
		return domain.KeyInfo{}, fmt.Errorf("unknown kdf %q", kdf)
	}
	kp, err := crypto.FromKeypairBytes(keypair[:])
	if err != nil {
		return domain.KeyInfo{}, err
	}
	address := kp.Address()
	kp.Destroy()

	defer memzero.Zero(keypair[:])
	salt, ct, err := seal(kdf, params, passphrase, keypair[:], []byte(address))
	if err != nil {
		return domain.KeyInfo{}, err
	}

	rec := record{
		Version: keystoreFormatVersion,
		ID:      uuid.NewString(),
		Address: address,
		Created: s.now().UTC(),
		KDF:     kdf,
		Params:  params,
		Salt:    salt,
		Cipher:  ct,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := writeJSON(s.path(address), rec, recordMode); err != nil {
		return domain.KeyInfo{}, err
	}
	return rec.info(), nil
}

// LoadKey opens the record for address.
func (s *KeyFileStore) LoadKey(address domain.Address, passphrase string) (domain.KeypairBytes, error) {
	var out domain.KeypairBytes
	if err := validateAddress(address); err != nil {
		return out, err
	}

	s.mu.Lock()
	rec, err := s.readRecord(s.path(address))
	s.mu.Unlock()
	if err != nil {
		return out, err
	}
	if rec.Address != address {
		return out, fmt.Errorf("record %s names address %s", address, rec.Address)
	}

	pt, err := open(rec.KDF, rec.Params, passphrase, rec.Salt, rec.Cipher, []byte(address))
	if err != nil {
		return out, err
	}
	defer memzero.Zero(pt)

	out, err = domain.KeypairBytesFromSlice(pt)
	if err != nil {
		return out, err
	}
	kp, err := crypto.FromKeypairBytes(out[:])
	if err != nil {
		memzero.Zero(out[:])
		return domain.KeypairBytes{}, err
	}
	defer kp.Destroy()
	if kp.Address() != address {
		memzero.Zero(out[:])
		return domain.KeypairBytes{}, domain.ErrKeypairMismatch
	}
	return out, nil
}

// ListKeys returns public information for every stored key, oldest first.
func (s *KeyFileStore) ListKeys() ([]domain.KeyInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []domain.KeyInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordSuffix) {
			continue
		}
		rec, err := s.readRecord(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		out = append(out, rec.info())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.Before(out[j].Created)
		}
		return out[i].Address < out[j].Address
	})
	return out, nil
}

// DeleteKey removes the record for address.
func (s *KeyFileStore) DeleteKey(address domain.Address) error {
	if err := validateAddress(address); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(address))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s: %w", address, domain.ErrKeyNotFound)
	}
	return err
}

func (s *KeyFileStore) path(address domain.Address) string {
	return filepath.Join(s.dir, address.String()+recordSuffix)
}

func (s *KeyFileStore) readRecord(path string) (record, error) {
	b, err := readFile(path)
	if err != nil {
		return record{}, err
	}
	if b == nil {
		return record{}, fmt.Errorf("%s: %w", filepath.Base(path), domain.ErrKeyNotFound)
	}
	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return record{}, err
	}
	if rec.Version > keystoreFormatVersion {
		return record{}, fmt.Errorf("unsupported keystore version %d", rec.Version)
	}
	return rec, nil
}

// validateAddress keeps file names to well-formed base58 public keys.
func validateAddress(address domain.Address) error {
	_, err := codec.DecodePublicKey(address.String())
	return err
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
