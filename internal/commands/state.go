package commands

import (
	"context"
	"os"

	"github.com/ruminaider/brickshelf/internal/collection"
	"github.com/ruminaider/brickshelf/internal/sections"
)

// ShelfState is the summary shown by the status command.
type ShelfState struct {
	ConfigExists bool
	Total        int
	ByStatus     map[collection.Status]int
	Themes       int
	Shared       bool
	DefaultHome  bool
}

// DetectShelfState gathers a status summary. It is designed to be fast and
// never error; anything it cannot read is left at its zero value.
func DetectShelfState(ctx context.Context, app *App, configPath string) ShelfState {
	state := ShelfState{ByStatus: map[collection.Status]int{}}

	if _, err := os.Stat(configPath); err == nil {
		state.ConfigExists = true
	}

	if sets, err := app.DB.ListSets(ctx, app.User); err == nil {
		state.Total = len(sets)
		for _, s := range sets {
			state.ByStatus[s.Status]++
		}
		state.Themes = len(collection.Themes(sets))
	}

	if share, err := ShareStatus(ctx, app); err == nil {
		state.Shared = share.Enabled
	}

	if configs, err := app.Home.Get(ctx, app.User); err == nil {
		state.DefaultHome = sections.IsDefaultConfig(configs)
	}

	return state
}
