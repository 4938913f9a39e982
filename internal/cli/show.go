package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Display one contact",
		Long:  `Show prints the contact whose name matches exactly, case included.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.openBook()
			if err != nil {
				return err
			}
			r, ok := findExact(book.List(), args[0])
			if !ok {
				return userError(fmt.Errorf("%w: %q", types.ErrNotFound, args[0]))
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), r)
			}
			printRecordDetail(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

// findExact returns the first record named exactly name, the same match the
// store uses for update and delete.
func findExact(records []types.Record, name string) (types.Record, bool) {
	for _, r := range records {
		if r.Name == name {
			return r, true
		}
	}
	return types.Record{}, false
}
