package sections_test

import (
	"math/rand/v2"
	"testing"

	"github.com/ruminaider/brickshelf/internal/collection"
	"github.com/ruminaider/brickshelf/internal/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionIDs(res []sections.Resolved) []string {
	out := make([]string, len(res))
	for i, r := range res {
		out[i] = r.ID
	}
	return out
}

func TestResolve_DropsEmptySections(t *testing.T) {
	sets := []collection.Set{
		set("1", collection.StatusAssembled),
		set("2", collection.StatusAssembled),
		set("3", collection.StatusAssembled),
	}
	configs := []sections.Config{sections.Smart(sections.Unopened), sections.Smart(sections.Assembled)}

	res := sections.NewResolver().Resolve(configs, sets)
	require.Len(t, res, 1)
	assert.Equal(t, "assembled", res[0].ID)
	assert.Equal(t, "On Display", res[0].Title)
	assert.Len(t, res[0].Sets, 3)
	assert.Equal(t, sections.HasContent, sections.Summarize(configs, res))
}

func TestResolve_PreservesConfigOrder(t *testing.T) {
	sets := sampleSets()
	configs := []sections.Config{
		sections.Smart(sections.Disassembled),
		sections.Smart(sections.Largest),
		sections.Smart(sections.InProgress),
	}
	r := sections.NewResolver()

	assert.Equal(t, []string{"disassembled", "largest", "in_progress"}, sectionIDs(r.Resolve(configs, sets)))

	// Removing one entry removes exactly that section.
	without := []sections.Config{configs[0], configs[2]}
	assert.Equal(t, []string{"disassembled", "in_progress"}, sectionIDs(r.Resolve(without, sets)))
}

func TestResolve_NilUsesDefault(t *testing.T) {
	sets := []collection.Set{
		withDate(withPieces(set("1", collection.StatusInProgress), 10), collection.Date("2024-05-05")),
		set("2", collection.StatusUnopened),
	}
	res := sections.NewResolver(sections.WithRand(rand.New(rand.NewPCG(1, 2)))).Resolve(nil, sets)
	assert.Equal(t, []string{"in_progress", "discover", "recently_added", "largest"}, sectionIDs(res))
}

func TestResolve_EmptyConfigYieldsNothing(t *testing.T) {
	configs := []sections.Config{}
	res := sections.NewResolver().Resolve(configs, sampleSets())
	assert.Empty(t, res)
	assert.Equal(t, sections.NoSectionsConfigured, sections.Summarize(configs, res))
}

func TestResolve_AllEmpty(t *testing.T) {
	configs := []sections.Config{sections.Smart(sections.Unopened), sections.Theme("Ninjago")}
	res := sections.NewResolver().Resolve(configs, []collection.Set{set("1", collection.StatusAssembled)})
	assert.Empty(t, res)
	assert.Equal(t, sections.AllSectionsEmpty, sections.Summarize(configs, res))
}

func TestResolve_SkipsUnknownTypes(t *testing.T) {
	configs := []sections.Config{
		sections.Smart("from_the_future"),
		sections.Smart(sections.Unopened),
	}
	res := sections.NewResolver().Resolve(configs, sampleSets())
	assert.Equal(t, []string{"unopened"}, sectionIDs(res))
}

func TestResolve_ThemeSection(t *testing.T) {
	sets := []collection.Set{
		withTheme(set("1", collection.StatusAssembled), "star wars"),
		withTheme(set("2", collection.StatusAssembled), "City"),
	}
	res := sections.NewResolver().Resolve([]sections.Config{sections.Theme("Star Wars")}, sets)
	require.Len(t, res, 1)
	assert.Equal(t, "theme:star wars", res[0].ID)
	assert.Equal(t, "Star Wars", res[0].Title)
	assert.Equal(t, "theme=Star%20Wars", res[0].ViewAllFilter)
	assert.Equal(t, []string{"1"}, ids(res[0].Sets))
}

func TestResolved_Visible(t *testing.T) {
	var sets []collection.Set
	for i := 0; i < 14; i++ {
		sets = append(sets, withPieces(set(string(rune('a'+i)), collection.StatusAssembled), i))
	}
	res := sections.NewResolver().Resolve([]sections.Config{sections.Smart(sections.Largest), sections.Smart(sections.Assembled)}, sets)
	require.Len(t, res, 2)

	assert.Len(t, res[0].Sets, 14, "resolver keeps the full ranked list")
	assert.Len(t, res[0].Visible(), 10)
	assert.Len(t, res[1].Visible(), 14, "uncapped sections show everything")
}

func TestIsDefaultConfig(t *testing.T) {
	assert.True(t, sections.IsDefaultConfig([]sections.Config{
		sections.Smart(sections.InProgress),
		sections.Smart(sections.Discover),
		sections.Smart(sections.RecentlyAdded),
		sections.Smart(sections.Largest),
	}))
	assert.False(t, sections.IsDefaultConfig([]sections.Config{
		sections.Smart(sections.Discover),
		sections.Smart(sections.InProgress),
		sections.Smart(sections.RecentlyAdded),
		sections.Smart(sections.Largest),
	}))
	assert.False(t, sections.IsDefaultConfig(nil))
}

func TestDefaultConfig_ReturnsCopy(t *testing.T) {
	a := sections.DefaultConfig()
	a[0] = sections.Theme("Creator")
	assert.Equal(t, "in_progress", sections.DefaultConfig()[0].Key())
}
