package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ruminaider/brickshelf/internal/sections"
	"go.yaml.in/yaml/v3"
)

// CurrentVersion is written to new config files.
const CurrentVersion = "1.0.0"

// Preference backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// EnvCatalogKey overrides Catalog.APIKey when set.
const EnvCatalogKey = "REBRICKABLE_API_KEY"

// Config represents ~/.brickshelf/config.yaml.
type Config struct {
	Version     string        `yaml:"version"`
	User        string        `yaml:"user"`
	Database    string        `yaml:"database,omitempty"`
	Preferences string        `yaml:"preferences,omitempty"`
	LogLevel    string        `yaml:"log_level,omitempty"`
	Catalog     CatalogConfig `yaml:"catalog,omitempty"`
	Share       ShareConfig   `yaml:"share,omitempty"`
}

// CatalogConfig points at the set catalog API used for enrichment.
type CatalogConfig struct {
	BaseURL     string `yaml:"base_url,omitempty"`
	APIKey      string `yaml:"api_key,omitempty"`
	Concurrency int    `yaml:"concurrency,omitempty"`
}

// ShareConfig controls how public links are printed.
type ShareConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
}

// UserPreferences represents one user's preferences file.
type UserPreferences struct {
	HomeSections sections.List `yaml:"home_sections"`
}

// Default returns a Config with default values.
func Default() Config {
	user := os.Getenv("USER")
	if user == "" {
		user = "me"
	}
	return Config{
		Version:     CurrentVersion,
		User:        user,
		Preferences: BackendSQLite,
		LogLevel:    "warn",
		Catalog: CatalogConfig{
			BaseURL:     "https://rebrickable.com/api/v3",
			Concurrency: 4,
		},
		Share: ShareConfig{
			BaseURL: "https://brickshelf.app/shared",
		},
	}
}

// Parse parses config.yaml bytes into a Config. Missing fields take their
// default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Preferences = strings.ToLower(cfg.Preferences)
	if cfg.Preferences != BackendSQLite && cfg.Preferences != BackendFile {
		return Config{}, fmt.Errorf("parsing config: unknown preferences backend %q", cfg.Preferences)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads the config at path. A missing file yields Default(). The
// catalog API key environment variable wins over the file.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = Parse(data)
		if err != nil {
			return Config{}, err
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if key := os.Getenv(EnvCatalogKey); key != "" {
		cfg.Catalog.APIKey = key
	}
	return cfg, nil
}

// ParseUserPreferences parses a user preferences file.
func ParseUserPreferences(data []byte) (UserPreferences, error) {
	var prefs UserPreferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return UserPreferences{}, fmt.Errorf("parsing user preferences: %w", err)
	}
	return prefs, nil
}

// MarshalUserPreferences serializes preferences to YAML bytes.
func MarshalUserPreferences(prefs UserPreferences) ([]byte, error) {
	return yaml.Marshal(prefs)
}
