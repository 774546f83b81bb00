package paths

import (
	"os"
	"path/filepath"
)

// EnvDir overrides the data directory when set.
const EnvDir = "BRICKSHELF_DIR"

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ShelfDir returns ~/.brickshelf, or $BRICKSHELF_DIR when set.
func ShelfDir() string {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	return filepath.Join(home(), ".brickshelf")
}

// ConfigFile returns ~/.brickshelf/config.yaml.
func ConfigFile() string {
	return filepath.Join(ShelfDir(), "config.yaml")
}

// PreferencesDir returns ~/.brickshelf/preferences, one YAML file per user.
func PreferencesDir() string {
	return filepath.Join(ShelfDir(), "preferences")
}

// DatabaseFile returns ~/.brickshelf/collection.db.
func DatabaseFile() string {
	return filepath.Join(ShelfDir(), "collection.db")
}
