package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.Replay.StrictMatching)
	assert.True(t, cfg.Replay.DeleteAfterMatch)
	assert.Equal(t, 1000, cfg.Replay.MaxLogEntries)
	assert.False(t, cfg.Import.IncludeStatic)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
capture: fixtures/session.har
replay:
  strict_matching: false
logging:
  level: debug
`)
	cfg, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "fixtures/session.har", cfg.Capture)
	assert.False(t, cfg.Replay.StrictMatching)
	// Keys the file does not mention keep their defaults.
	assert.True(t, cfg.Replay.DeleteAfterMatch)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestParseYAMLInvalid(t *testing.T) {
	_, err := ParseYAML([]byte("replay: [not: a: mapping"))
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"replay": {"delete_after_match": false}}`)
	cfg, err := ParseJSON(data)
	require.NoError(t, err)

	assert.False(t, cfg.Replay.DeleteAfterMatch)
	assert.True(t, cfg.Replay.StrictMatching)
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON([]byte("{not json"))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml extension", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("capture: a.har\n"), 0o644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a.har", cfg.Capture)
	})

	t.Run("json extension", func(t *testing.T) {
		path := filepath.Join(dir, "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"capture": "b.har"}`), 0o644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "b.har", cfg.Capture)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(dir, "nope.yaml"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := LoadFromFile(path)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})
}
