package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a contact",
		Long: `Delete removes the contact named exactly <name> (case included) after
asking for confirmation.

Example:
  addressbook delete Bob
  addressbook delete Bob --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete contact '%s'? [y/N] ", name)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			book, err := a.openBook()
			if err != nil {
				return err
			}
			ok, err := book.Delete(name)
			if err != nil {
				return persistError(cmd.ErrOrStderr(), err)
			}
			if !ok {
				return userError(fmt.Errorf("%w: %q", types.ErrNotFound, name))
			}
			a.logger.Info("deleted contact", "name", name)

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), map[string]string{
					"deleted": name,
					"status":  "success",
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted contact: %s\n", name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

// confirm prints prompt and reports whether the answer starts with y.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
