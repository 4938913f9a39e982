// Package jsonfile implements the address book store on a single JSON file.
// This file provides the backing file codec and its atomic persistence.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/pretty"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// prettyOptions indents the backing file by four spaces. Indentation is
// cosmetic; readers accept any layout.
var prettyOptions = &pretty.Options{
	Width:  80,
	Prefix: "",
	Indent: "    ",
}

// Decode parses the backing file format: a top-level JSON array of objects
// each carrying name, phone, email and address. Any entry that fails
// types.RecordFromMap fails the whole decode; partial results are never
// returned.
func Decode(data []byte) ([]types.Record, error) {
	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse contacts: %w", err)
	}
	if entries == nil {
		// A literal null is not an array.
		return nil, fmt.Errorf("parse contacts: %w: top level is not an array", types.ErrMalformedRecord)
	}

	records := make([]types.Record, 0, len(entries))
	for i, entry := range entries {
		r, err := types.RecordFromMap(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// Encode renders records in the backing file format, in order.
func Encode(records []types.Record) ([]byte, error) {
	entries := make([]map[string]string, 0, len(records))
	for _, r := range records {
		entries = append(entries, r.ToMap())
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal contacts: %w", err)
	}
	return pretty.PrettyOptions(data, prettyOptions), nil
}

// ReadFile reads and decodes the file at path.
func ReadFile(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// WriteFile encodes records and replaces path atomically using the
// temp-file, fsync, rename pattern. On failure path is left untouched and the
// temp file is removed. A symlinked path is written through to its target,
// and an existing file keeps its permission bits.
func WriteFile(path string, records []types.Record) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}

	target, perm, err := writeTarget(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".contacts-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing contacts: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// writeTarget resolves the file WriteFile replaces and the mode it gets. A
// path that does not exist yet is created with mode 0644.
func writeTarget(path string) (string, os.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, 0o644, nil
	}
	if err != nil {
		return "", 0, fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", target, err)
	}
	return target, info.Mode().Perm(), nil
}
