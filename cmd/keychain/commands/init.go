package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	vaultsvc "keychain/internal/services/vault"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new vault protected by a master password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Fail before prompting when a vault is already there.
			if wire.Store.Exists() {
				return vaultsvc.ErrVaultExists
			}
			pw, err := masterPassword(cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			kc, err := wire.Vault.Create(cmd.Context(), pw)
			if err != nil {
				return err
			}
			defer kc.Close()

			_, d, err := kc.Dump()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Vault created in %s\nDigest: %s\n", home, d)
			return nil
		},
	}
}
