package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tidwall/pretty"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// maxColumnWidth truncates long cells in table output.
const maxColumnWidth = 40

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	_, err = w.Write(pretty.Pretty(data))
	return err
}

// printRecords renders records as JSON or as a table depending on jsonMode.
func printRecords(w io.Writer, records []types.Record, jsonMode bool) error {
	if jsonMode {
		if records == nil {
			records = []types.Record{}
		}
		return printJSON(w, records)
	}
	printRecordTable(w, records)
	return nil
}

// printRecordTable prints records in a human-readable table format.
func printRecordTable(w io.Writer, records []types.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No contacts found.")
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tPHONE\tEMAIL\tADDRESS")
	fmt.Fprintln(tw, "----\t-----\t-----\t-------")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			truncate(r.Name),
			r.Phone,
			truncate(r.Email),
			truncate(oneLine(r.Address)),
		)
	}
	tw.Flush()

	// Trim the padding tabwriter leaves after the last column.
	for _, line := range strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}

	fmt.Fprintf(w, "Total: %d contact(s)\n", len(records))
}

// printRecordDetail prints a single record, one field per line.
func printRecordDetail(w io.Writer, r types.Record) {
	fmt.Fprintf(w, "Name:     %s\n", r.Name)
	fmt.Fprintf(w, "Phone:    %s\n", r.Phone)
	fmt.Fprintf(w, "Email:    %s\n", r.Email)
	fmt.Fprintf(w, "Address:  %s\n", r.Address)
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxColumnWidth {
		return s
	}
	return string(runes[:maxColumnWidth-3]) + "..."
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
