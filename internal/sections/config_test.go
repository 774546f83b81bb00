package sections_test

import (
	"encoding/json"
	"testing"

	"github.com/ruminaider/brickshelf/internal/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestConfigKeys(t *testing.T) {
	assert.Equal(t, "largest", sections.Smart(sections.Largest).Key())
	assert.Equal(t, "theme:star wars", sections.Theme("Star Wars").Key())
	assert.Equal(t, sections.Theme("STAR WARS").Key(), sections.Theme("star wars").Key())
}

func TestList_ParseJSON(t *testing.T) {
	input := []byte(`[{"type":"unopened"},{"type":"theme","themeName":"Technic"},{"type":"most_loved"}]`)

	var list sections.List
	require.NoError(t, json.Unmarshal(input, &list))
	require.Len(t, list, 3)
	assert.Equal(t, sections.SmartSection{Type: sections.Unopened}, list[0])
	assert.Equal(t, sections.ThemeSection{ThemeName: "Technic"}, list[1])
	assert.Equal(t, sections.SmartSection{Type: "most_loved"}, list[2], "unknown types are kept")

	out, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, string(input), string(out))
}

func TestList_ParseYAML(t *testing.T) {
	input := []byte(`- type: in_progress
- type: theme
  themeName: Star Wars
`)
	var list sections.List
	require.NoError(t, yaml.Unmarshal(input, &list))
	assert.Equal(t, []string{"in_progress", "theme:star wars"}, sections.Keys(list))
}

func TestList_InvalidJSON(t *testing.T) {
	var list sections.List
	assert.Error(t, json.Unmarshal([]byte(`{"type":"unopened"}`), &list))
}

func TestClone(t *testing.T) {
	orig := []sections.Config{sections.Smart(sections.Unopened)}
	c := sections.Clone(orig)
	c[0] = sections.Smart(sections.Assembled)
	assert.Equal(t, "unopened", orig[0].Key())
	assert.Nil(t, sections.Clone(nil))
}
