package commands

import (
	"os"

	"github.com/spf13/cobra"

	"sigcore/internal/app"
)

var (
	home       string
	passphrase string
	logLevel   string
	wire       *app.Wire
)

// NewRootCommand builds the command tree. Flag state is reset on each call.
func NewRootCommand() *cobra.Command {
	home, passphrase, logLevel, wire = "", "", "", nil

	root := &cobra.Command{
		Use:           "sigcore",
		Short:         "Ed25519 key management and signing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(home)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}
			wire, err = app.NewWire(cfg, cmd.ErrOrStderr())
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default $SIGCORE_HOME or ~/.sigcore)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting stored keys")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides SIGCORE_LOG_LEVEL)")

	root.AddCommand(
		keygenCmd(),
		recoverCmd(),
		listCmd(),
		addressCmd(),
		signCmd(),
		verifyCmd(),
		encodeCmd(),
		decodeCmd(),
		exportCmd(),
		importCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
