package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sigcore/internal/codec"
	"sigcore/internal/domain"
	"sigcore/internal/envelope"
)

// errSignatureInvalid makes a failed verification exit non-zero.
var errSignatureInvalid = errors.New("signature invalid")

// readMessage returns the --message text or the contents of --file.
func readMessage(message, file string) ([]byte, error) {
	switch {
	case message != "" && file != "":
		return nil, fmt.Errorf("--message and --file are mutually exclusive")
	case file != "":
		return os.ReadFile(file)
	default:
		return []byte(message), nil
	}
}

func signCmd() *cobra.Command {
	var key, message, file, outPath, format string
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with a stored key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := readMessage(message, file)
			if err != nil {
				return err
			}
			pub, sig, err := wire.Keys.Sign(domain.Address(key), passphrase, msg)
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\nSignature: %s\n",
					codec.EncodePublicKey(pub), codec.EncodeSignature(sig))
				return nil
			}

			if format == "" {
				format = wire.Config.Format
			}
			f, err := envelope.ParseFormat(format)
			if err != nil {
				return err
			}
			bundle := envelope.SignedMessage{PublicKey: pub, Message: msg, Signature: sig}
			data, err := bundle.Marshal(f)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed bundle written to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "address of the signing key")
	cmd.Flags().StringVar(&message, "message", "", "message text")
	cmd.Flags().StringVar(&file, "file", "", "read the message from a file")
	cmd.Flags().StringVar(&outPath, "out", "", "write a signed bundle instead of printing the signature")
	cmd.Flags().StringVar(&format, "format", "", "bundle format: json or msgpack (default from config)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func verifyCmd() *cobra.Command {
	var bundlePath, pubText, sigText, message, file string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature or a signed bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sm envelope.SignedMessage
			if bundlePath != "" {
				if pubText != "" || sigText != "" {
					return fmt.Errorf("--bundle excludes --pubkey and --signature")
				}
				data, err := os.ReadFile(bundlePath)
				if err != nil {
					return err
				}
				if sm, err = envelope.Unmarshal("", data); err != nil {
					return err
				}
			} else {
				if pubText == "" || sigText == "" {
					return fmt.Errorf("either --bundle or both --pubkey and --signature are required")
				}
				pub, err := codec.DecodePublicKey(pubText)
				if err != nil {
					return fmt.Errorf("public key: %w", err)
				}
				sig, err := codec.DecodeSignature(sigText)
				if err != nil {
					return fmt.Errorf("signature: %w", err)
				}
				msg, err := readMessage(message, file)
				if err != nil {
					return err
				}
				sm = envelope.SignedMessage{PublicKey: pub, Message: msg, Signature: sig}
			}

			ok, err := wire.Keys.Verify(sm.PublicKey, sm.Message, sm.Signature)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Signature: INVALID")
				return errSignatureInvalid
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signature: valid\nSigner: %s\n", sm.PublicKey.Address())
			return nil
		},
	}
	cmd.Flags().StringVar(&bundlePath, "bundle", "", "signed bundle file (json or msgpack)")
	cmd.Flags().StringVar(&pubText, "pubkey", "", "base58 public key")
	cmd.Flags().StringVar(&sigText, "signature", "", "base58 signature")
	cmd.Flags().StringVar(&message, "message", "", "message text")
	cmd.Flags().StringVar(&file, "file", "", "read the message from a file")
	return cmd
}
