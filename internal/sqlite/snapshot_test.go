package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

var sample = []types.Record{
	{Name: "Carol", Phone: "(020) 7946-0000"},
	{Name: "Alice", Phone: "555-0001", Email: "alice@x.com", Address: "1 Elm St"},
	{Name: "Bob", Phone: "555-1234", Email: "bob@x.com", Address: "1 Main St"},
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "contacts.db")

	require.NoError(t, Export(ctx, path, sample))
	got, err := Import(ctx, path)

	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestExportReplacesExistingSnapshot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "contacts.db")

	require.NoError(t, Export(ctx, path, sample))
	require.NoError(t, Export(ctx, path, sample[:1]))

	got, err := Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, sample[:1], got)
}

func TestExportEmptyList(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "empty.db")

	require.NoError(t, Export(ctx, path, nil))
	got, err := Import(ctx, path)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExportAssignsUUIDv7RowIDs(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "contacts.db")
	require.NoError(t, Export(ctx, path, sample))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query("SELECT contact_id FROM contacts")
	require.NoError(t, err)
	defer rows.Close()

	seen := make(map[string]bool)
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		seen[id] = true
	}
	require.NoError(t, rows.Err())
	assert.Len(t, seen, len(sample))
}

func TestImportRejectsForeignDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "other.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE notes (body TEXT)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Import(ctx, path)
	assert.ErrorIs(t, err, ErrNotSnapshot)
}

func TestImportMissingFile(t *testing.T) {
	_, err := Import(context.Background(), filepath.Join(t.TempDir(), "absent.db"))
	assert.True(t, os.IsNotExist(err))
}
