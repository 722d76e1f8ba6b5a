package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEncryptCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [plaintext]",
		Short:   "Encrypt plaintext into a base64 3DES-CBC request body",
		Example: `  secretctl encrypt --config configs/local.yaml '{"a":1}'`,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := opts.codec()
			if err != nil {
				return err
			}
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), codec.Encrypt(text))
			return nil
		},
	}
}

func newDecryptCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt a base64 3DES-CBC request body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := opts.codec()
			if err != nil {
				return err
			}
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			plain, err := codec.Decrypt(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), plain)
			return nil
		},
	}
}
