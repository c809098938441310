package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"sigcore/internal/domain"
	"sigcore/internal/envelope"
)

const (
	homeEnv        = "SIGCORE_HOME"
	defaultHomeDir = ".sigcore"
	dotEnvFile     = ".env"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home             string `env:"SIGCORE_HOME"              validate:"required"`
	KDF              string `env:"SIGCORE_KDF"               env-default:"scrypt" validate:"oneof=scrypt argon2id"`
	Format           string `env:"SIGCORE_FORMAT"            env-default:"json"   validate:"oneof=json msgpack"`
	LogLevel         string `env:"SIGCORE_LOG_LEVEL"         env-default:"warn"   validate:"oneof=panic fatal error warn warning info debug trace"`
	StrictPassphrase bool   `env:"SIGCORE_STRICT_PASSPHRASE" env-default:"false"`
}

// DefaultHome returns $SIGCORE_HOME, or ~/.sigcore when unset.
func DefaultHome() string {
	if h := os.Getenv(homeEnv); h != "" {
		return h
	}
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, defaultHomeDir)
	}
	return defaultHomeDir
}

// Load builds a Config for home. Variables from <home>/.env are applied
// first without overriding the process environment; the environment is then
// read into Config. An empty home means DefaultHome.
func Load(home string) (Config, error) {
	if home == "" {
		home = DefaultHome()
	}
	if err := godotenv.Load(filepath.Join(home, dotEnvFile)); err != nil &&
		!errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	// An explicit home wins over SIGCORE_HOME.
	cfg.Home = home
	return cfg, cfg.Validate()
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// KDFValue returns the configured key derivation function.
func (c Config) KDFValue() domain.KDF { return domain.KDF(c.KDF) }

// FormatValue returns the configured bundle format.
func (c Config) FormatValue() (envelope.Format, error) { return envelope.ParseFormat(c.Format) }
