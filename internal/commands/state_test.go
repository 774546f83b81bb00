package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/brickshelf/internal/collection"
	"github.com/ruminaider/brickshelf/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShelfState_Empty(t *testing.T) {
	app := newTestApp(t, config.BackendSQLite)
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	state := DetectShelfState(context.Background(), app, configPath)

	assert.False(t, state.ConfigExists)
	assert.Zero(t, state.Total)
	assert.Zero(t, state.Themes)
	assert.False(t, state.Shared)
	assert.True(t, state.DefaultHome)
}

func TestDetectShelfState_Populated(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, config.BackendSQLite)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: \"1\"\n"), 0644))

	for _, in := range []AddSetInput{
		{Name: "Castle", Theme: "Castle"},
		{Name: "X-Wing", Theme: "Star Wars", Status: "assembled"},
		{Name: "TIE Fighter", Theme: "star wars", Status: "assembled"},
	} {
		_, err := AddSet(ctx, app, in, false)
		require.NoError(t, err)
	}
	_, err := AddThemeSection(ctx, app, "Castle")
	require.NoError(t, err)
	_, err = EnableShare(ctx, app)
	require.NoError(t, err)

	state := DetectShelfState(ctx, app, configPath)

	assert.True(t, state.ConfigExists)
	assert.Equal(t, 3, state.Total)
	assert.Equal(t, 2, state.ByStatus[collection.StatusAssembled])
	assert.Equal(t, 1, state.ByStatus[collection.StatusUnopened])
	assert.Equal(t, 2, state.Themes)
	assert.True(t, state.Shared)
	assert.False(t, state.DefaultHome)
}
