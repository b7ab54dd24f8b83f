package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <domain>",
		Aliases: []string{"rm"},
		Short:   "Delete the entry for a domain",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := masterPassword(cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			kc, err := wire.Vault.Open(cmd.Context(), pw, digest)
			if err != nil {
				return err
			}
			defer kc.Close()

			removed, err := kc.Remove(args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry for %q\n", args[0])
				return nil
			}
			snap, err := wire.Vault.Save(kc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed.\nDigest: %s\n", snap.Digest)
			return nil
		},
	}
}
