package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/ruminaider/brickshelf/internal/store"
)

// ShareInfo describes the public view of the user's collection.
type ShareInfo struct {
	Enabled bool
	Token   string
	URL     string
}

func (a *App) shareURL(token string) string {
	base := strings.TrimRight(a.Config.Share.BaseURL, "/")
	if base == "" || token == "" {
		return token
	}
	return base + "/" + token
}

// EnableShare turns on the public view and returns its link.
func EnableShare(ctx context.Context, app *App) (*ShareInfo, error) {
	s, err := app.DB.EnableShare(ctx, app.User)
	if err != nil {
		return nil, err
	}
	return &ShareInfo{Enabled: true, Token: s.Token, URL: app.shareURL(s.Token)}, nil
}

// DisableShare turns off the public view. Disabling a collection that was
// never shared is not an error.
func DisableShare(ctx context.Context, app *App) error {
	err := app.DB.DisableShare(ctx, app.User)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// ShareStatus reports the current public view state.
func ShareStatus(ctx context.Context, app *App) (*ShareInfo, error) {
	s, err := app.DB.ShareStatus(ctx, app.User)
	if errors.Is(err, store.ErrNotFound) {
		return &ShareInfo{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &ShareInfo{Enabled: s.Enabled, Token: s.Token, URL: app.shareURL(s.Token)}, nil
}

// SharedHome resolves the read-only home view behind a share token.
func SharedHome(ctx context.Context, app *App, token string) (*HomeView, error) {
	owner, err := app.DB.LookupShare(ctx, strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}
	return homeFor(ctx, app, owner)
}
