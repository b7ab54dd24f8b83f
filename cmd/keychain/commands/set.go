package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set <domain> [secret]: store a secret; prompts when the secret is omitted.
func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <domain> [secret]",
		Short: "Store or replace the secret for a domain",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := args[0]
			var secret string
			if len(args) == 2 {
				secret = args[1]
			} else {
				s, err := readHidden(cmd.ErrOrStderr(), "Secret: ")
				if err != nil {
					return err
				}
				secret = s
			}

			pw, err := masterPassword(cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			kc, err := wire.Vault.Open(cmd.Context(), pw, digest)
			if err != nil {
				return err
			}
			defer kc.Close()

			if err := kc.Set(domain, secret); err != nil {
				return err
			}
			snap, err := wire.Vault.Save(kc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored.\nDigest: %s\n", snap.Digest)
			return nil
		},
	}
}
