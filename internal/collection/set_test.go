package collection_test

import (
	"testing"

	"github.com/ruminaider/brickshelf/internal/collection"
	"github.com/stretchr/testify/assert"
)

func TestThemes(t *testing.T) {
	sets := []collection.Set{
		{ID: "1", Theme: collection.Ptr("Star Wars")},
		{ID: "2", Theme: collection.Ptr("technic")},
		{ID: "3"},
		{ID: "4", Theme: collection.Ptr("star wars")},
		{ID: "5", Theme: collection.Ptr("  ")},
		{ID: "6", Theme: collection.Ptr("City")},
	}
	assert.Equal(t, []string{"City", "Star Wars", "technic"}, collection.Themes(sets))
}

func TestThemeName(t *testing.T) {
	assert.Equal(t, "", collection.Set{}.ThemeName())
	assert.Equal(t, "Ideas", collection.Set{Theme: collection.Ptr("Ideas")}.ThemeName())
}

func TestRecentlyReceived(t *testing.T) {
	sets := []collection.Set{
		{ID: "none"},
		{ID: "old", DateReceived: collection.Date("2020-03-01")},
		{ID: "bad", DateReceived: collection.Date("someday")},
		{ID: "new", DateReceived: collection.Date("2024-07-15")},
		{ID: "legacy", DateReceived: collection.LegacyDate(1672531200, 0)}, // 2023-01-01
	}
	got := collection.RecentlyReceived(sets)

	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"new", "legacy", "old", "bad"}, ids)
	assert.Equal(t, "none", sets[0].ID, "input order is untouched")
	assert.Equal(t, "old", sets[1].ID)
}
