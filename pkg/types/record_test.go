package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordToMap(t *testing.T) {
	r := Record{Name: "Ada Lovelace", Phone: "555-0100", Email: "ada@example.com", Address: "London"}

	m := r.ToMap()

	assert.Equal(t, map[string]string{
		"name":    "Ada Lovelace",
		"phone":   "555-0100",
		"email":   "ada@example.com",
		"address": "London",
	}, m)
}

func TestRecordFromMap(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		want    Record
		wantErr bool
	}{
		{
			name: "all keys present",
			input: map[string]any{
				"name": "Bob", "phone": "555-1234", "email": "bob@x.com", "address": "1 Main St",
			},
			want: Record{Name: "Bob", Phone: "555-1234", Email: "bob@x.com", Address: "1 Main St"},
		},
		{
			name: "empty optional fields",
			input: map[string]any{
				"name": "Bob", "phone": "555-1234", "email": "", "address": "",
			},
			want: Record{Name: "Bob", Phone: "555-1234"},
		},
		{
			name: "extra keys ignored",
			input: map[string]any{
				"name": "Bob", "phone": "555-1234", "email": "", "address": "", "notes": "x",
			},
			want: Record{Name: "Bob", Phone: "555-1234"},
		},
		{
			name:    "missing address",
			input:   map[string]any{"name": "Bob", "phone": "555-1234", "email": ""},
			wantErr: true,
		},
		{
			name:    "missing name",
			input:   map[string]any{"phone": "555-1234", "email": "", "address": ""},
			wantErr: true,
		},
		{
			name:    "non-string phone",
			input:   map[string]any{"name": "Bob", "phone": 5551234.0, "email": "", "address": ""},
			wantErr: true,
		},
		{
			name:    "empty map",
			input:   map[string]any{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RecordFromMap(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedRecord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordMapRoundTrip(t *testing.T) {
	r := Record{Name: "Zoë", Phone: "+44 (20) 7946", Email: "z@ex.co.uk", Address: "Flat 2, 10 Road"}

	m := make(map[string]any)
	for k, v := range r.ToMap() {
		m[k] = v
	}
	got, err := RecordFromMap(m)

	require.NoError(t, err)
	assert.Equal(t, r, got)
}
