package types

// AddressBook is the contract between the presentation layer and the record
// store. Implementations persist after every successful mutation and trust
// their inputs: validation and the duplicate-name check belong to the caller.
type AddressBook interface {
	// List returns every record in insertion order. The slice is a copy.
	List() []Record

	// Search returns the records whose name contains term case-insensitively
	// or whose phone contains the case-folded term. An empty term matches
	// every record.
	Search(term string) []Record

	// Add appends r and persists. Uniqueness is not checked.
	Add(r Record) error

	// Update replaces the first record named exactly oldName with r, keeping
	// its position, and persists. Returns false when no record matches.
	Update(oldName string, r Record) (bool, error)

	// Delete removes the first record named exactly name and persists.
	// Returns false when no record matches.
	Delete(name string) (bool, error)
}
