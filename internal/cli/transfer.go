package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/internal/jsonfile"
	"github.com/mesh-intelligence/addressbook/internal/sqlite"
	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// Snapshot formats for export and import.
const (
	formatJSON   = "json"
	formatSQLite = "sqlite"
)

// resolveFormat returns the explicit format or infers it from the extension.
func resolveFormat(explicit, path string) (string, error) {
	switch explicit {
	case formatJSON, formatSQLite:
		return explicit, nil
	case "":
	default:
		return "", fmt.Errorf("unknown format %q (valid: json, sqlite)", explicit)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return formatSQLite, nil
	default:
		return formatJSON, nil
	}
}

func newExportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export contacts to a JSON or SQLite file",
		Long: `Export writes every contact, in list order, to <path>. The format is taken
from --format or from the extension: .db, .sqlite and .sqlite3 produce a
SQLite database, anything else a JSON file in the contacts file format.

Example:
  addressbook export backup.json
  addressbook export contacts.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := resolveFormat(format, path)
			if err != nil {
				return userError(err)
			}
			book, err := a.openBook()
			if err != nil {
				return err
			}
			records := book.List()

			switch f {
			case formatSQLite:
				err = sqlite.Export(cmd.Context(), path, records)
			default:
				err = jsonfile.WriteFile(path, records)
			}
			if err != nil {
				return sysError(fmt.Errorf("export: %w", err))
			}
			a.logger.Info("exported contacts", "path", path, "format", f, "count", len(records))

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d contact(s) to %s\n", len(records), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "output format: json or sqlite (default: by extension)")
	return cmd
}

// importResult summarizes an import for output.
type importResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Reasons  []string `json:"reasons,omitempty"`
}

func newImportCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import contacts from a JSON or SQLite file",
		Long: `Import adds the contacts in <path> to the address book. Entries are
checked like the add command: invalid entries and names that already exist
(ignoring case) are skipped and reported.

Example:
  addressbook import backup.json
  addressbook import contacts.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := resolveFormat(format, path)
			if err != nil {
				return userError(err)
			}

			var incoming []types.Record
			switch f {
			case formatSQLite:
				incoming, err = sqlite.Import(cmd.Context(), path)
			default:
				incoming, err = jsonfile.ReadFile(path)
			}
			if err != nil {
				if errors.Is(err, types.ErrMalformedRecord) || errors.Is(err, sqlite.ErrNotSnapshot) {
					return userError(fmt.Errorf("import: %w", err))
				}
				return sysError(fmt.Errorf("import: %w", err))
			}

			book, err := a.openBook()
			if err != nil {
				return err
			}

			var res importResult
			for _, r := range incoming {
				r = types.Normalize(r)
				if err := types.Validate(r); err != nil {
					res.Skipped++
					res.Reasons = append(res.Reasons, fmt.Sprintf("%q: %s", r.Name, err))
					continue
				}
				if err := types.CheckDuplicate(book.List(), r.Name); err != nil {
					res.Skipped++
					res.Reasons = append(res.Reasons, fmt.Sprintf("%q: %s", r.Name, err))
					continue
				}
				if err := book.Add(r); err != nil {
					return persistError(cmd.ErrOrStderr(), err)
				}
				res.Imported++
			}
			a.logger.Info("imported contacts", "path", path, "imported", res.Imported, "skipped", res.Skipped)

			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), res)
			}
			for _, reason := range res.Reasons {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s\n", reason)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d contact(s), skipped %d\n", res.Imported, res.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "input format: json or sqlite (default: by extension)")
	return cmd
}
