package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/internal/jsonfile"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the contacts file is readable",
		Long: `Check loads the contacts file strictly and reports any problem that the
normal load would silently replace with an empty address book. The file is
never modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.resolveFile()
			if err != nil {
				return sysError(fmt.Errorf("resolve contacts file: %w", err))
			}

			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(cmd.OutOrStdout(), "No contacts file at %s\n", path)
				return nil
			}

			store, err := jsonfile.Open(path, jsonfile.WithLoadPolicy(jsonfile.FailOnCorrupt), jsonfile.WithLogger(a.logger))
			if err != nil {
				return userError(fmt.Errorf("contacts file is unreadable: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d contact(s) in %s\n", len(store.List()), path)
			return nil
		},
	}
}
