package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keychain/internal/app"
)

var (
	home       string
	password   string
	digest     string
	iterations int
	verbose    bool
	wire       *app.Wire
)

func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "keychain",
		Short:         "Encrypted password keychain",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				home = os.Getenv("KEYCHAIN_HOME")
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".keychain")
			}
			if password == "" {
				password = os.Getenv("KEYCHAIN_PASSWORD")
			}

			w, err := app.NewWire(app.Config{
				Home:       home,
				Iterations: iterations,
				Verbose:    verbose,
				Log:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			wire = w
			wire.Log.Debug().Str("command", cmd.Name()).Msg("running")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "vault dir (default $KEYCHAIN_HOME or ~/.keychain)")
	root.PersistentFlags().StringVarP(&password, "password", "p", "", "master password (default $KEYCHAIN_PASSWORD or prompt)")
	root.PersistentFlags().StringVar(&digest, "digest", "", "trusted vault digest to check against instead of the stored one")
	root.PersistentFlags().IntVar(&iterations, "iterations", 0, "PBKDF2 iterations (must match the value used at init)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(initCmd(), setCmd(), getCmd(), removeCmd(), dumpCmd(), verifyCmd())
	return root
}
