package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/brickshelf/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestShelfDir(t *testing.T) {
	t.Setenv(paths.EnvDir, "")
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.ShelfDir(), home))
	assert.True(t, strings.HasSuffix(paths.ShelfDir(), ".brickshelf"))
}

func TestShelfDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.EnvDir, dir)
	assert.Equal(t, dir, paths.ShelfDir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), paths.ConfigFile())
}

func TestPreferencesDir(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.PreferencesDir(), "preferences"))
}

func TestDatabaseFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.DatabaseFile(), "collection.db"))
}
