package app

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"sigcore/internal/domain"
	"sigcore/internal/services/keys"
	"sigcore/internal/store"
)

// Wire bundles the logger, store and services for the CLI.
type Wire struct {
	Config Config
	Log    *logrus.Logger
	Store  domain.KeyStore
	Keys   *keys.Service
}

// NewWire constructs the dependency graph from cfg. Logs go to logOut, or
// stderr when nil.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if logOut == nil {
		logOut = os.Stderr
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(logOut)
	log.SetLevel(level)

	ks := store.NewKeyFileStore(cfg.Home)
	svc := keys.New(ks, log, keys.Options{
		KDF:              cfg.KDFValue(),
		StrictPassphrase: cfg.StrictPassphrase,
	})

	log.WithFields(logrus.Fields{"home": cfg.Home, "kdf": cfg.KDF}).Debug("wired")
	return &Wire{
		Config: cfg,
		Log:    log,
		Store:  ks,
		Keys:   svc,
	}, nil
}
