package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// LoadPolicy decides how Open treats a backing file that exists but cannot be
// read or decoded. A missing file is an empty store under every policy.
type LoadPolicy int

const (
	// FallbackToEmpty discards unreadable state and starts with an empty
	// store. The cause is logged, never returned.
	FallbackToEmpty LoadPolicy = iota
	// FailOnCorrupt returns the cause from Open.
	FailOnCorrupt
)

// ParseLoadPolicy maps a config value to a LoadPolicy. The empty string is
// FallbackToEmpty.
func ParseLoadPolicy(s string) (LoadPolicy, error) {
	switch s {
	case "", types.LoadPolicyFallback:
		return FallbackToEmpty, nil
	case types.LoadPolicyStrict:
		return FailOnCorrupt, nil
	default:
		return FallbackToEmpty, fmt.Errorf("%w: %q", types.ErrLoadPolicyUnknown, s)
	}
}

// Store holds the ordered contact records and their backing file. Every
// successful Add, Update or Delete rewrites the whole file before returning.
//
// A Store is not safe for concurrent use, and nothing prevents a second
// process from opening the same file.
type Store struct {
	path    string
	policy  LoadPolicy
	logger  *slog.Logger
	records []types.Record
}

var _ types.AddressBook = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLoadPolicy sets the policy applied by Open and Load.
func WithLoadPolicy(p LoadPolicy) Option {
	return func(s *Store) { s.policy = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open creates a Store bound to path and loads it. Under FallbackToEmpty the
// error is always nil.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:   path,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory records with the content of the backing file.
// On any failure the store is left empty; whether the failure is returned
// depends on the load policy.
func (s *Store) Load() error {
	records, err := ReadFile(s.path)
	if err == nil {
		s.records = records
		s.logger.Debug("loaded contacts", "path", s.path, "count", len(records))
		return nil
	}

	s.records = nil
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no contacts file, starting empty", "path", s.path)
		return nil
	}
	if s.policy == FailOnCorrupt {
		return fmt.Errorf("load %s: %w", s.path, err)
	}
	s.logger.Warn("discarding unreadable contacts file", "path", s.path, "err", err)
	return nil
}

// Save rewrites the backing file from the in-memory records. Failures wrap
// types.ErrPersistence.
func (s *Store) Save() error {
	if err := WriteFile(s.path, s.records); err != nil {
		return fmt.Errorf("%w: %w", types.ErrPersistence, err)
	}
	s.logger.Debug("saved contacts", "path", s.path, "count", len(s.records))
	return nil
}

// List returns a copy of the records in insertion order.
func (s *Store) List() []types.Record {
	out := make([]types.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Search returns every record whose lower-cased name contains the lower-cased
// term, or whose phone contains the lower-cased term. Phones are compared as
// stored. An empty term matches everything.
func (s *Store) Search(term string) []types.Record {
	term = strings.ToLower(term)
	var out []types.Record
	for _, r := range s.records {
		if strings.Contains(strings.ToLower(r.Name), term) || strings.Contains(r.Phone, term) {
			out = append(out, r)
		}
	}
	return out
}

// Add appends r and saves. Names are not checked for uniqueness here.
// If the save fails the record stays in memory and the error is returned.
func (s *Store) Add(r types.Record) error {
	s.records = append(s.records, r)
	return s.Save()
}

// Update replaces the first record whose name equals oldName exactly (case
// matters) with r and saves. It returns false, without saving, when there is
// no such record.
func (s *Store) Update(oldName string, r types.Record) (bool, error) {
	i := s.indexOf(oldName)
	if i < 0 {
		return false, nil
	}
	s.records[i] = r
	return true, s.Save()
}

// Delete removes the first record whose name equals name exactly and saves.
// It returns false, without saving, when there is no such record.
func (s *Store) Delete(name string) (bool, error) {
	i := s.indexOf(name)
	if i < 0 {
		return false, nil
	}
	s.records = slices.Delete(s.records, i, i+1)
	return true, s.Save()
}

func (s *Store) indexOf(name string) int {
	for i, r := range s.records {
		if r.Name == name {
			return i
		}
	}
	return -1
}
