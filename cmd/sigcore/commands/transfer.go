package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sigcore/internal/domain"
)

func exportCmd() *cobra.Command {
	var key, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a stored key to an unencrypted keypair file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Keys.Export(domain.Address(key), passphrase, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Keypair written to %s (unencrypted)\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "address of the key to export")
	cmd.Flags().StringVar(&out, "out", "", "destination file")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <keypair.json>",
		Short: "Store the key held in a keypair file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := wire.Keys.Import(args[0], passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key imported.\nAddress: %s\n", info.Address)
			return nil
		},
	}
}
