package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all contacts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.openBook()
			if err != nil {
				return err
			}
			return printRecords(cmd.OutOrStdout(), book.List(), a.flags.jsonMode)
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search [term...]",
		Short: "Search contacts by name or phone",
		Long: `Search lists contacts whose name contains the term (ignoring case) or
whose phone contains it. Multiple words are joined with spaces. An empty term
lists every contact.

Example:
  addressbook search ada
  addressbook search 555-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.openBook()
			if err != nil {
				return err
			}
			term := strings.TrimSpace(strings.Join(args, " "))
			if term == "" {
				return printRecords(cmd.OutOrStdout(), book.List(), a.flags.jsonMode)
			}
			return printRecords(cmd.OutOrStdout(), book.Search(term), a.flags.jsonMode)
		},
	}
}
