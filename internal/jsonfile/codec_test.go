package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

func TestEncodeEmptyIsArray(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)

	var v []any
	require.NoError(t, json.Unmarshal(data, &v))
	assert.NotNil(t, v)
	assert.Empty(t, v)
}

func TestEncodeWritesExactlyFourKeys(t *testing.T) {
	data, err := Encode([]types.Record{{Name: "Ada Lovelace", Phone: "555-0100"}})
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, map[string]any{
		"name":    "Ada Lovelace",
		"phone":   "555-0100",
		"email":   "",
		"address": "",
	}, entries[0])
}

func TestDecodeIgnoresIndentation(t *testing.T) {
	compact := `[{"name":"Ada Lovelace","phone":"555-0100","email":"ada@example.com","address":"London"}]`
	indented := "[\n  {\"name\": \"Ada Lovelace\", \"phone\": \"555-0100\", \"email\": \"ada@example.com\", \"address\": \"London\"}\n]\n"

	a, err := Decode([]byte(compact))
	require.NoError(t, err)
	b, err := Decode([]byte(indented))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, []types.Record{{Name: "Ada Lovelace", Phone: "555-0100", Email: "ada@example.com", Address: "London"}}, a)
}

func TestDecodeEmptyArray(t *testing.T) {
	records, err := Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.json")

	require.NoError(t, WriteFile(path, []types.Record{{Name: "A", Phone: "1234567"}}))
	require.NoError(t, WriteFile(path, []types.Record{{Name: "B", Phone: "7654321"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "contacts.json", entries[0].Name())

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []types.Record{{Name: "B", Phone: "7654321"}}, got)
}
