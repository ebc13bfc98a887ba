package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gridlock.log")
	log, closeFn, err := New(Config{Level: slog.LevelDebug, JSON: true, File: path})
	require.NoError(t, err)

	log.Debug("toggle committed", "row", 1, "col", 2)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "toggle committed", entry["msg"])
	assert.EqualValues(t, 2, entry["col"])
}

func TestNewQuietDiscards(t *testing.T) {
	log, closeFn, err := New(Config{Quiet: true})
	require.NoError(t, err)
	assert.False(t, log.Enabled(t.Context(), slog.LevelError))
	require.NoError(t, closeFn())
}
