package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToWarnText(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Options{}, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", "path", "contacts.json")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "path=contacts.json")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Options{Level: "debug", Format: "JSON"}, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("loaded contacts", "count", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded contacts", entry["msg"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestNewWritesToLogfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addressbook.log")
	var buf bytes.Buffer

	logger, closeFn, err := New(Options{Level: "info", Logfile: path}, &buf)
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Empty(t, buf.String())
}

func TestNewRejectsUnknownValues(t *testing.T) {
	_, _, err := New(Options{Level: "loud"}, os.Stderr)
	assert.Error(t, err)

	_, _, err = New(Options{Format: "xml"}, os.Stderr)
	assert.Error(t, err)
}
