package commands_test

import (
	"testing"

	"github.com/ruminaider/brickshelf/internal/collection"
	"github.com/ruminaider/brickshelf/internal/commands"
	"github.com/ruminaider/brickshelf/internal/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []collection.Set {
	return []collection.Set{
		{ID: "a", Status: collection.StatusInProgress, Theme: collection.Ptr("Star Wars"), PieceCount: collection.Ptr(500), Year: collection.Ptr(2019)},
		{ID: "b", Status: collection.StatusRebuildInProgress, Theme: collection.Ptr("Technic"), PieceCount: collection.Ptr(3000)},
		{ID: "c", Status: collection.StatusUnopened, Theme: collection.Ptr("star wars"), Year: collection.Ptr(1999), DateReceived: collection.Date("2024-01-02")},
		{ID: "d", Status: collection.StatusAssembled, DateReceived: collection.Date("2024-05-01")},
	}
}

func filteredIDs(t *testing.T, filter string) []string {
	t.Helper()
	got, err := commands.FilterSets(filterFixture(), filter)
	require.NoError(t, err)
	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	return ids
}

func TestFilterSets(t *testing.T) {
	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"a", "b", "c", "d"}},
		{"status=in_progress", []string{"a", "b"}},
		{"status=unopened", []string{"c"}},
		{"theme=Star%20Wars", []string{"a", "c"}},
		{"sort=recent", []string{"d", "c"}},
		{"sort=pieces_desc", []string{"b", "a"}},
		{"sort=pieces_asc", []string{"a", "b"}},
		{"sort=year_desc", []string{"a", "c"}},
		{"sort=year_asc", []string{"c", "a"}},
		{"theme=star+wars&sort=year_asc", []string{"c", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			assert.Equal(t, tt.want, filteredIDs(t, tt.filter))
		})
	}
}

func TestFilterSets_Errors(t *testing.T) {
	for _, f := range []string{"colour=red", "sort=alphabetical", "status=lost", "%zz"} {
		_, err := commands.FilterSets(filterFixture(), f)
		assert.Error(t, err, f)
	}
}

func TestFilterSets_RecentMatchesSection(t *testing.T) {
	sets := []collection.Set{
		{ID: "good", DateReceived: collection.Date("2024-02-01")},
		{ID: "vague", DateReceived: collection.Date("someday")},
		{ID: "undated"},
	}
	def, ok := sections.Lookup(sections.RecentlyAdded)
	require.True(t, ok)
	section := def.Rank(sets, nil)

	viewAll, err := commands.FilterSets(sets, def.ViewAllFilter)
	require.NoError(t, err)
	assert.Equal(t, section, viewAll)
	assert.Len(t, viewAll, 2)
}
