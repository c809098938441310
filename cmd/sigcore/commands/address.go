package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"sigcore/internal/boundary"
	"sigcore/internal/crypto"
	"sigcore/internal/domain"
)

func addressCmd() *cobra.Command {
	var seedHex, pubHex string
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the address for a seed or a raw public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (seedHex == "") == (pubHex == "") {
				return fmt.Errorf("exactly one of --seed or --pubkey is required")
			}
			if seedHex != "" {
				seed, err := hex.DecodeString(seedHex)
				if err != nil {
					return fmt.Errorf("seed: %w", domain.ErrInvalidEncoding)
				}
				res, err := boundary.GenerateKeypair(seed)
				clear(seed)
				if err != nil {
					return err
				}
				clear(res.PrivateKeyBytes)
				fmt.Fprintln(cmd.OutOrStdout(), res.PublicKeyText)
				return nil
			}

			raw, err := hex.DecodeString(pubHex)
			if err != nil {
				return fmt.Errorf("public key: %w", domain.ErrInvalidEncoding)
			}
			// Validates length and point encoding before printing.
			v, err := crypto.NewVerifier(raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.PublicKey().Address())
			return nil
		},
	}
	cmd.Flags().StringVar(&seedHex, "seed", "", "32-byte seed as hex")
	cmd.Flags().StringVar(&pubHex, "pubkey", "", "32-byte public key as hex")
	return cmd
}
