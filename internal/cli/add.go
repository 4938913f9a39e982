package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	var f contactFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Long: `Add creates a new contact. Name and phone are required; names must be
unique regardless of case.

Example:
  addressbook add --name "Ada Lovelace" --phone 555-0100
  addressbook add --name Bob --phone "555 1234" --email bob@x.com --address "1 Main St"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, a, f.record())
		},
	}
	f.register(cmd, "contact name (required)")
	return cmd
}

func runAdd(cmd *cobra.Command, a *app, r types.Record) error {
	if err := types.Validate(r); err != nil {
		return userError(err)
	}

	book, err := a.openBook()
	if err != nil {
		return err
	}
	if err := types.CheckDuplicate(book.List(), r.Name); err != nil {
		return userError(err)
	}

	if err := book.Add(r); err != nil {
		return persistError(cmd.ErrOrStderr(), err)
	}
	a.logger.Info("added contact", "name", r.Name)

	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), r)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added contact: %s\n", r.Name)
	return nil
}
