// Package homeconfig reads and writes a user's home section configuration
// and supplies the built-in default when none is stored.
package homeconfig

import (
	"context"
	"fmt"

	"github.com/ruminaider/brickshelf/internal/sections"
	"go.uber.org/zap"
)

// PreferenceStore is the durable backing for section configurations.
type PreferenceStore interface {
	LoadHomeSections(ctx context.Context, userID string) ([]sections.Config, bool, error)
	SaveHomeSections(ctx context.Context, userID string, list []sections.Config) error
}

// Adapter exposes get/set of one user's configuration.
type Adapter struct {
	store  PreferenceStore
	logger *zap.Logger
}

// New returns an Adapter over store.
func New(store PreferenceStore, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{store: store, logger: logger}
}

// Get returns the stored configuration, or the default when the user never
// saved one. The returned slice is the caller's to modify.
func (a *Adapter) Get(ctx context.Context, userID string) ([]sections.Config, error) {
	list, ok, err := a.store.LoadHomeSections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading home sections: %w", err)
	}
	if !ok {
		return sections.DefaultConfig(), nil
	}
	return sections.Clone(list), nil
}

// Set replaces the whole stored configuration with list.
func (a *Adapter) Set(ctx context.Context, userID string, list []sections.Config) error {
	if list == nil {
		list = []sections.Config{}
	}
	if err := a.store.SaveHomeSections(ctx, userID, sections.Clone(list)); err != nil {
		a.logger.Warn("saving home sections failed", zap.String("user", userID), zap.Error(err))
		return fmt.Errorf("saving home sections: %w", err)
	}
	a.logger.Debug("home sections saved", zap.String("user", userID), zap.Strings("keys", sections.Keys(list)))
	return nil
}

// Reset stores the default configuration.
func (a *Adapter) Reset(ctx context.Context, userID string) error {
	return a.Set(ctx, userID, sections.DefaultConfig())
}

// Saver returns a function that saves for userID, in the shape the editor
// session expects.
func (a *Adapter) Saver(userID string) func(context.Context, []sections.Config) error {
	return func(ctx context.Context, list []sections.Config) error {
		return a.Set(ctx, userID, list)
	}
}
