// Package addressbook provides the public API for opening an address book
// while keeping the storage implementation internal.
package addressbook

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/addressbook/internal/jsonfile"
	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// Version is the release version, overridable at link time with
// -ldflags "-X github.com/mesh-intelligence/addressbook/pkg/addressbook.Version=...".
var Version = "0.1.0"

// Open validates cfg and opens the address book stored in cfg.File. A nil
// logger discards log output.
//
// Example:
//
//	book, err := addressbook.Open(types.Config{File: "contacts.json"}, nil)
//	if err != nil {
//	    return err
//	}
//	err = book.Add(types.Record{Name: "Ada Lovelace", Phone: "555-0100"})
func Open(cfg types.Config, logger *slog.Logger) (types.AddressBook, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, err := jsonfile.ParseLoadPolicy(cfg.LoadPolicy)
	if err != nil {
		return nil, err
	}

	opts := []jsonfile.Option{jsonfile.WithLoadPolicy(policy)}
	if logger != nil {
		opts = append(opts, jsonfile.WithLogger(logger))
	}
	store, err := jsonfile.Open(cfg.File, opts...)
	if err != nil {
		return nil, fmt.Errorf("open address book: %w", err)
	}
	return store, nil
}
