package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"555-1234", true},
		{"+1 555 123 4567", true},
		{"5551234", true},           // exactly 7
		{"123456789012345", true},   // exactly 15
		{"-------", true},           // no digits at all still passes
		{"555123", false},           // 6 characters
		{"1234567890123456", false}, // 16 characters
		{"555-CALL", false},         // letters
		{"555.1234", false},         // dots are not allowed
		{"", false},
		{"٥٥٥١٢٣٤", true},       // Arabic-Indic digits
		{"555\x1f1234", true},   // unit separator is whitespace
		{"555\u00851234", true}, // next line is whitespace
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPhone(tt.phone))
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"bob@x.com", true},
		{"ada.lovelace@example.co.uk", true},
		{"first-last@sub-domain.org", true},
		{"under_score@host.io", true},
		{"bob@localhost", false}, // no dot after @
		{"@x.com", false},        // empty local part
		{"bob x@y.com", false},   // space
		{"bob+tag@x.com", false}, // + is not a word character
		{"bob@x.", false},        // empty TLD
		{"bob@@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		wantKind ValidationKind
	}{
		{
			name:   "valid full record",
			record: Record{Name: "Bob", Phone: "555-1234", Email: "bob@x.com", Address: "1 Main St"},
		},
		{
			name:   "valid without email",
			record: Record{Name: "Bob", Phone: "555-1234"},
		},
		{
			name:     "missing name wins over missing phone",
			record:   Record{},
			wantKind: MissingName,
		},
		{
			name:     "missing phone",
			record:   Record{Name: "Bob"},
			wantKind: MissingPhone,
		},
		{
			name:     "bad phone",
			record:   Record{Name: "Bob", Phone: "12"},
			wantKind: InvalidPhoneFormat,
		},
		{
			name:     "bad email",
			record:   Record{Name: "Bob", Phone: "555-1234", Email: "not-an-email"},
			wantKind: InvalidEmailFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.record)
			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantKind, verr.Kind)
		})
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(Record{Name: "  Bob ", Phone: "\t555-1234\n", Email: " b@x.com", Address: " 1 Main St "})

	assert.Equal(t, Record{Name: "Bob", Phone: "555-1234", Email: "b@x.com", Address: "1 Main St"}, got)
}

func TestCheckDuplicate(t *testing.T) {
	existing := []Record{
		{Name: "Alice", Phone: "555-0001"},
		{Name: "Bob", Phone: "555-0002"},
	}

	t.Run("case-insensitive clash", func(t *testing.T) {
		err := CheckDuplicate(existing, "ALICE")
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, DuplicateName, verr.Kind)
	})

	t.Run("no clash", func(t *testing.T) {
		assert.NoError(t, CheckDuplicate(existing, "Carol"))
	})

	t.Run("empty store", func(t *testing.T) {
		assert.NoError(t, CheckDuplicate(nil, "Alice"))
	})
}
