package types

// Load policies decide what happens when the backing file exists but cannot
// be read or parsed.
const (
	// LoadPolicyFallback resets the store to empty and carries on.
	LoadPolicyFallback = "fallback"
	// LoadPolicyStrict reports the failure to the caller.
	LoadPolicyStrict = "strict"
)

// DefaultFileName is the backing file used when nothing else is configured.
const DefaultFileName = "contacts.json"

// Config holds the parameters for opening an address book.
type Config struct {
	File       string `json:"file" yaml:"file"`
	LoadPolicy string `json:"load_policy" yaml:"load_policy"`
}

var knownLoadPolicies = map[string]bool{
	"":                 true, // defaults to fallback
	LoadPolicyFallback: true,
	LoadPolicyStrict:   true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.File == "" {
		return ErrFileEmpty
	}
	if !knownLoadPolicies[c.LoadPolicy] {
		return ErrLoadPolicyUnknown
	}
	return nil
}
