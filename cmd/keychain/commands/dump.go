package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dump prints the representation after confirming the password opens it.
func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the stored representation and its digest",
		Args:  cobra.NoArgs,
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

			repr, d, err := kc.Dump()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), repr)
			fmt.Fprintf(cmd.OutOrStdout(), "Digest: %s\n", d)
			return nil
		},
	}
}
