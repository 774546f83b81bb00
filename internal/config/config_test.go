package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/brickshelf/internal/config"
	"github.com/ruminaider/brickshelf/internal/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		input := []byte(`version: "1.0.0"
user: alice
database: /tmp/bricks.db
preferences: file
log_level: debug
catalog:
  base_url: http://localhost:9999/api/v3
  api_key: secret
  concurrency: 2
share:
  base_url: https://example.com/s
`)
		cfg, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "alice", cfg.User)
		assert.Equal(t, "/tmp/bricks.db", cfg.Database)
		assert.Equal(t, config.BackendFile, cfg.Preferences)
		assert.Equal(t, "secret", cfg.Catalog.APIKey)
		assert.Equal(t, 2, cfg.Catalog.Concurrency)
		assert.Equal(t, "https://example.com/s", cfg.Share.BaseURL)
	})

	t.Run("defaults fill gaps", func(t *testing.T) {
		cfg, err := config.Parse([]byte("user: bob\n"))
		require.NoError(t, err)
		assert.Equal(t, "bob", cfg.User)
		assert.Equal(t, config.BackendSQLite, cfg.Preferences)
		assert.Equal(t, 4, cfg.Catalog.Concurrency)
		assert.Equal(t, config.CurrentVersion, cfg.Version)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := config.Parse([]byte("preferences: cloud\n"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		t.Setenv(config.EnvCatalogKey, "")
		cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default().Catalog.BaseURL, cfg.Catalog.BaseURL)
	})

	t.Run("env overrides api key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("catalog:\n  api_key: from-file\n"), 0644))
		t.Setenv(config.EnvCatalogKey, "from-env")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Catalog.APIKey)
	})
}

func TestUserPreferences(t *testing.T) {
	input := []byte(`home_sections:
  - type: largest
  - type: theme
    themeName: Ideas
`)
	prefs, err := config.ParseUserPreferences(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"largest", "theme:ideas"}, sections.Keys(prefs.HomeSections))

	data, err := config.MarshalUserPreferences(prefs)
	require.NoError(t, err)
	assert.Contains(t, string(data), "themeName: Ideas")
}
