package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruminaider/brickshelf/internal/collection"
	"github.com/ruminaider/brickshelf/internal/sections"
	"github.com/ruminaider/brickshelf/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "nested", "collection.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSets_AddListGet(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first, err := db.AddSet(ctx, "alice", collection.Set{
		Number:       "75192",
		Name:         "Millennium Falcon",
		Theme:        collection.Ptr("Star Wars"),
		PieceCount:   collection.Ptr(7541),
		Year:         collection.Ptr(2017),
		Status:       collection.StatusUnopened,
		DateReceived: collection.Date("2023-12-25"),
		CreatedAt:    base,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = db.AddSet(ctx, "alice", collection.Set{
		Name:         "Old Castle",
		Status:       collection.StatusDisassembled,
		DateReceived: collection.LegacyDate(1700000000, 0),
		CreatedAt:    base.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = db.AddSet(ctx, "bob", collection.Set{Name: "Not Alice's", Status: collection.StatusAssembled})
	require.NoError(t, err)

	sets, err := db.ListSets(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "Millennium Falcon", sets[0].Name)
	assert.Equal(t, "Star Wars", sets[0].ThemeName())
	assert.Equal(t, 7541, *sets[0].PieceCount)
	assert.Equal(t, "2023-12-25", sets[0].DateReceived.ISO())
	assert.Nil(t, sets[1].PieceCount)
	assert.Nil(t, sets[1].Theme)
	assert.True(t, sets[1].DateReceived.IsLegacy())
	assert.Equal(t, "2023-11-14", sets[1].DateReceived.ISO())

	got, err := db.GetSet(ctx, "alice", first.ID)
	require.NoError(t, err)
	assert.Equal(t, "75192", got.Number)

	_, err = db.GetSet(ctx, "bob", first.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSets_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	s, err := db.AddSet(ctx, "alice", collection.Set{Name: "Technic Car", Status: collection.StatusUnopened})
	require.NoError(t, err)

	require.NoError(t, db.UpdateStatus(ctx, "alice", s.ID, collection.StatusInProgress))
	got, err := db.GetSet(ctx, "alice", s.ID)
	require.NoError(t, err)
	assert.Equal(t, collection.StatusInProgress, got.Status)

	got.PieceCount = collection.Ptr(3696)
	got.Theme = collection.Ptr("Technic")
	require.NoError(t, db.UpdateSet(ctx, "alice", got))
	got, err = db.GetSet(ctx, "alice", s.ID)
	require.NoError(t, err)
	assert.Equal(t, 3696, *got.PieceCount)

	assert.ErrorIs(t, db.UpdateStatus(ctx, "alice", "missing", collection.StatusAssembled), store.ErrNotFound)

	require.NoError(t, db.DeleteSet(ctx, "alice", s.ID))
	assert.ErrorIs(t, db.DeleteSet(ctx, "alice", s.ID), store.ErrNotFound)
}

func TestHomeSections(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	list, ok, err := db.LoadHomeSections(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, list)

	want := []sections.Config{sections.Theme("Star Wars"), sections.Smart(sections.Unopened)}
	require.NoError(t, db.SaveHomeSections(ctx, "alice", want))

	list, ok, err = db.LoadHomeSections(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, list)

	// Saving replaces the whole list, including with an empty one.
	require.NoError(t, db.SaveHomeSections(ctx, "alice", []sections.Config{}))
	list, ok, err = db.LoadHomeSections(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestShares(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	_, err := db.ShareStatus(ctx, "alice")
	assert.ErrorIs(t, err, store.ErrNotFound)

	share, err := db.EnableShare(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, share.Enabled)
	assert.NotEmpty(t, share.Token)

	owner, err := db.LookupShare(ctx, share.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", owner)

	require.NoError(t, db.DisableShare(ctx, "alice"))
	_, err = db.LookupShare(ctx, share.Token)
	assert.ErrorIs(t, err, store.ErrNotFound)

	again, err := db.EnableShare(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, share.Token, again.Token, "re-enabling keeps the link")

	assert.ErrorIs(t, db.DisableShare(ctx, "bob"), store.ErrNotFound)
}
