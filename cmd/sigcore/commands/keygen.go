package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sigcore/internal/domain"
)

func keygenCmd() *cobra.Command {
	var (
		seedHex     string
		useMnemonic bool
		words       int
		mnemonicPw  string
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a signing key and store it encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seedHex != "" && useMnemonic {
				return fmt.Errorf("--seed and --mnemonic are mutually exclusive")
			}
			var (
				gen domain.GeneratedKey
				err error
			)
			switch {
			case useMnemonic:
				gen, err = wire.Keys.CreateFromMnemonic(passphrase, mnemonicPw, words)
			case seedHex != "":
				seed, derr := hex.DecodeString(seedHex)
				if derr != nil {
					return fmt.Errorf("seed: %w", domain.ErrInvalidEncoding)
				}
				gen, err = wire.Keys.Create(passphrase, seed)
				clear(seed)
			default:
				gen, err = wire.Keys.Create(passphrase, nil)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Key created.\nAddress: %s\n", gen.Info.Address)
			if gen.Phrase != "" {
				fmt.Fprintf(out, "Recovery phrase (write it down, it is not stored):\n%s\n", gen.Phrase)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&seedHex, "seed", "", "32-byte seed as hex")
	cmd.Flags().BoolVar(&useMnemonic, "mnemonic", false, "derive the key from a new recovery phrase")
	cmd.Flags().IntVar(&words, "words", 12, "recovery phrase length (12, 15, 18, 21 or 24)")
	cmd.Flags().StringVar(&mnemonicPw, "mnemonic-passphrase", "", "optional recovery phrase passphrase")
	return cmd
}

func recoverCmd() *cobra.Command {
	var mnemonicPw string
	cmd := &cobra.Command{
		Use:   "recover <phrase...>",
		Short: "Restore a key from its recovery phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := wire.Keys.Recover(strings.Join(args, " "), mnemonicPw, passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key recovered.\nAddress: %s\n", gen.Info.Address)
			return nil
		},
	}
	cmd.Flags().StringVar(&mnemonicPw, "mnemonic-passphrase", "", "recovery phrase passphrase used at creation")
	return cmd
}
