package homeconfig_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ruminaider/brickshelf/internal/homeconfig"
	"github.com/ruminaider/brickshelf/internal/prefs"
	"github.com/ruminaider/brickshelf/internal/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (f failingStore) LoadHomeSections(context.Context, string) ([]sections.Config, bool, error) {
	return nil, false, f.err
}

func (f failingStore) SaveHomeSections(context.Context, string, []sections.Config) error {
	return f.err
}

func TestGet_DefaultWhenMissing(t *testing.T) {
	a := homeconfig.New(prefs.NewFileStore(t.TempDir()), nil)
	list, err := a.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, sections.IsDefaultConfig(list))
}

func TestSet_ReplacesWholeList(t *testing.T) {
	ctx := context.Background()
	a := homeconfig.New(prefs.NewFileStore(t.TempDir()), nil)

	require.NoError(t, a.Set(ctx, "alice", []sections.Config{sections.Smart(sections.Unopened), sections.Smart(sections.Assembled)}))
	require.NoError(t, a.Set(ctx, "alice", []sections.Config{sections.Theme("City")}))

	list, err := a.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"theme:city"}, sections.Keys(list))
}

func TestSet_EmptyListIsNotDefault(t *testing.T) {
	ctx := context.Background()
	a := homeconfig.New(prefs.NewFileStore(t.TempDir()), nil)

	require.NoError(t, a.Set(ctx, "alice", nil))
	list, err := a.Get(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	a := homeconfig.New(prefs.NewFileStore(t.TempDir()), nil)

	require.NoError(t, a.Set(ctx, "alice", []sections.Config{sections.Theme("City")}))
	require.NoError(t, a.Reset(ctx, "alice"))
	list, err := a.Get(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, sections.IsDefaultConfig(list))
}

func TestErrorsAreWrapped(t *testing.T) {
	boom := errors.New("store offline")
	a := homeconfig.New(failingStore{err: boom}, nil)

	_, err := a.Get(context.Background(), "alice")
	assert.ErrorIs(t, err, boom)

	err = a.Saver("alice")(context.Background(), sections.DefaultConfig())
	assert.ErrorIs(t, err, boom)
}
