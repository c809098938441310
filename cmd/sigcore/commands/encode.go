package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"sigcore/internal/codec"
	"sigcore/internal/domain"
)

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <hex>",
		Short: "Encode hex bytes as base58",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("hex: %w", domain.ErrInvalidEncoding)
			}
			fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeBase58(b))
			return nil
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <base58>",
		Short: "Decode base58 text to hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := codec.DecodeBase58(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
			return nil
		},
	}
}
