package commands

import (
	"context"
	"fmt"

	"github.com/ruminaider/brickshelf/internal/collection"
	"github.com/ruminaider/brickshelf/internal/editor"
	"github.com/ruminaider/brickshelf/internal/sections"
)

// HomeView is everything the home screen renders.
type HomeView struct {
	Configs  []sections.Config
	Sections []sections.Resolved
	State    sections.State
	Sets     []collection.Set
}

// Home resolves the user's home view.
func Home(ctx context.Context, app *App) (*HomeView, error) {
	return homeFor(ctx, app, app.User)
}

func homeFor(ctx context.Context, app *App, userID string) (*HomeView, error) {
	configs, err := app.Home.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	sets, err := app.DB.ListSets(ctx, userID)
	if err != nil {
		return nil, err
	}
	resolved := app.Resolver.Resolve(configs, sets)
	return &HomeView{
		Configs:  configs,
		Sections: resolved,
		State:    sections.Summarize(configs, resolved),
		Sets:     sets,
	}, nil
}

// OpenEditor starts an editor session on the user's saved configuration.
func OpenEditor(ctx context.Context, app *App) (*editor.Session, error) {
	configs, err := app.Home.Get(ctx, app.User)
	if err != nil {
		return nil, err
	}
	return editor.Open(configs), nil
}

// SaveEditor commits a session through the configuration adapter.
func SaveEditor(ctx context.Context, app *App, s *editor.Session) error {
	return s.Save(ctx, app.Home.Saver(app.User))
}

// EditHome opens a session, applies edit, and saves. If edit fails the
// session is cancelled and nothing is written.
func EditHome(ctx context.Context, app *App, edit func(*editor.Session) error) ([]sections.Config, error) {
	s, err := OpenEditor(ctx, app)
	if err != nil {
		return nil, err
	}
	if err := edit(s); err != nil {
		s.Cancel()
		return nil, err
	}
	draft := s.Draft()
	if err := SaveEditor(ctx, app, s); err != nil {
		return nil, err
	}
	return draft, nil
}

// AddSmartSection appends a smart section to the saved configuration.
func AddSmartSection(ctx context.Context, app *App, typ string) (bool, error) {
	t := sections.SmartType(typ)
	if !sections.Known(t) {
		return false, fmt.Errorf("unknown section type %q", typ)
	}
	var added bool
	_, err := EditHome(ctx, app, func(s *editor.Session) error {
		var err error
		added, err = s.AddSmart(t)
		return err
	})
	return added, err
}

// AddThemeSection appends a theme section to the saved configuration.
func AddThemeSection(ctx context.Context, app *App, name string) (bool, error) {
	var added bool
	_, err := EditHome(ctx, app, func(s *editor.Session) error {
		var err error
		added, err = s.AddTheme(name)
		return err
	})
	return added, err
}

// RemoveSection drops the entry at index from the saved configuration.
func RemoveSection(ctx context.Context, app *App, index int) error {
	_, err := EditHome(ctx, app, func(s *editor.Session) error {
		return s.Remove(index)
	})
	return err
}

// MoveSection reorders the saved configuration.
func MoveSection(ctx context.Context, app *App, from, to int) error {
	_, err := EditHome(ctx, app, func(s *editor.Session) error {
		return s.Reorder(from, to)
	})
	return err
}

// ResetSections restores the default configuration.
func ResetSections(ctx context.Context, app *App) error {
	_, err := EditHome(ctx, app, func(s *editor.Session) error {
		return s.Reset()
	})
	return err
}
