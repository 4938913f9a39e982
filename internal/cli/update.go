package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

func newUpdateCmd(a *app) *cobra.Command {
	var f contactFlags
	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Update a contact",
		Long: `Update replaces the contact named exactly <name> (case included). Fields
not given keep their current values; --name renames the contact.

Example:
  addressbook update Bob --phone 555-9999
  addressbook update Bob --name Robert --email robert@x.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, a, &f, args[0])
		},
	}
	f.register(cmd, "new contact name")
	return cmd
}

func runUpdate(cmd *cobra.Command, a *app, f *contactFlags, oldName string) error {
	if !f.anyChanged(cmd) {
		return userError(errors.New("at least one of --name, --phone, --email or --address must be provided"))
	}

	book, err := a.openBook()
	if err != nil {
		return err
	}

	records := book.List()
	idx := -1
	for i, r := range records {
		if r.Name == oldName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return userError(fmt.Errorf("%w: %q", types.ErrNotFound, oldName))
	}

	r := f.overlay(cmd, records[idx])
	if err := types.Validate(r); err != nil {
		return userError(err)
	}
	if r.Name != oldName {
		others := append(records[:idx:idx], records[idx+1:]...)
		if err := types.CheckDuplicate(others, r.Name); err != nil {
			return userError(err)
		}
	}

	ok, err := book.Update(oldName, r)
	if err != nil {
		return persistError(cmd.ErrOrStderr(), err)
	}
	if !ok {
		return userError(fmt.Errorf("%w: %q", types.ErrNotFound, oldName))
	}
	a.logger.Info("updated contact", "old_name", oldName, "name", r.Name)

	if a.flags.jsonMode {
		return printJSON(cmd.OutOrStdout(), r)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated contact: %s\n", r.Name)
	return nil
}
