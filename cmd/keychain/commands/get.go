package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func getCmd() *cobra.Command {
	var (
		copySecret bool
		clearAfter time.Duration
	)
	cmd := &cobra.Command{
		Use:   "get <domain>",
		Short: "Print the secret for a domain",
		Args:  cobra.ExactArgs(1),
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

			secret, ok, err := kc.Get(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no entry for %q", args[0])
			}
			if !copySecret {
				fmt.Fprintln(cmd.OutOrStdout(), secret)
				return nil
			}

			if err := clipboard.WriteAll(secret); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Secret copied to clipboard. Clearing in %s...\n", clearAfter)
			select {
			case <-time.After(clearAfter):
			case <-cmd.Context().Done():
			}
			if err := clipboard.WriteAll(""); err != nil {
				return fmt.Errorf("clear clipboard: %w", err)
			}
			wire.Log.Debug().Msg("clipboard cleared")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copySecret, "copy", "c", false, "copy the secret to the clipboard instead of printing it")
	cmd.Flags().DurationVar(&clearAfter, "clear-after", 30*time.Second, "how long the copied secret stays on the clipboard")
	return cmd
}
