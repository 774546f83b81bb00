package commands

import (
	"fmt"
	"path/filepath"

	"github.com/ruminaider/brickshelf/internal/catalog"
	"github.com/ruminaider/brickshelf/internal/config"
	"github.com/ruminaider/brickshelf/internal/homeconfig"
	"github.com/ruminaider/brickshelf/internal/prefs"
	"github.com/ruminaider/brickshelf/internal/sections"
	"github.com/ruminaider/brickshelf/internal/store"
	"go.uber.org/zap"
)

// App bundles the collaborators every command needs.
type App struct {
	Config   config.Config
	User     string
	DB       *store.DB
	Home     *homeconfig.Adapter
	Resolver *sections.Resolver
	Catalog  catalog.API
	Logger   *zap.Logger
}

// Open wires an App from cfg. Relative database paths are resolved against
// shelfDir.
func Open(cfg config.Config, shelfDir string, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("no user configured; set 'user' in config.yaml")
	}

	dbPath := cfg.Database
	if dbPath == "" {
		dbPath = "collection.db"
	}
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(shelfDir, dbPath)
	}
	db, err := store.Open(dbPath, logger)
	if err != nil {
		return nil, err
	}

	var backing homeconfig.PreferenceStore = db
	if cfg.Preferences == config.BackendFile {
		backing = prefs.NewFileStore(filepath.Join(shelfDir, "preferences"))
	}

	return &App{
		Config:   cfg,
		User:     cfg.User,
		DB:       db,
		Home:     homeconfig.New(backing, logger),
		Resolver: sections.NewResolver(sections.WithLogger(logger)),
		Catalog:  catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey),
		Logger:   logger,
	}, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}
