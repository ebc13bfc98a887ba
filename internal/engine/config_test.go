package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 10, c.Size)
	assert.Equal(t, 0.2, c.FillProbability)
	assert.Equal(t, 10000, c.MaxAttempts)
	require.NoError(t, c.Validate())
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"size":             "12",
		"fill_probability": "0.15",
		"max_attempts":     "500",
		"seed":             "99",
	})
	assert.Equal(t, Config{Size: 12, FillProbability: 0.15, MaxAttempts: 500, Seed: 99}, c)
}

func TestFromMapKeepsDefaultsOnBadValues(t *testing.T) {
	c := FromMap(map[string]string{
		"size":             "-3",
		"fill_probability": "1.5",
		"max_attempts":     "zero",
	})
	assert.Equal(t, DefaultConfig(), c)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridlock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 8\nfillProbability: 0.1\nseed: 3\n"), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Size: 8, FillProbability: 0.1, MaxAttempts: DefaultMaxAttempts, Seed: 3}, c)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("size: [\n"), 0o644))
	_, err = LoadConfig(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("maxAttempts: 0\n"), 0o644))
	_, err = LoadConfig(invalid)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyMapOverridesOnlyGivenKeys(t *testing.T) {
	base := Config{Size: 8, FillProbability: 0.1, MaxAttempts: 50, Seed: 4}
	c := ApplyMap(base, map[string]string{"max_attempts": "75", "unknown": "1"})
	assert.Equal(t, Config{Size: 8, FillProbability: 0.1, MaxAttempts: 75, Seed: 4}, c)
}
