// Package sections resolves a user's home-screen section configuration
// against their collection. A configuration is an ordered list of smart
// sections (fixed ranking rules) and theme sections (one theme each).
package sections

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// SmartType identifies one of the built-in ranking rules.
type SmartType string

const (
	InProgress    SmartType = "in_progress"
	Discover      SmartType = "discover"
	RecentlyAdded SmartType = "recently_added"
	Largest       SmartType = "largest"
	Smallest      SmartType = "smallest"
	NewestYear    SmartType = "newest_year"
	OldestYear    SmartType = "oldest_year"
	Unopened      SmartType = "unopened"
	Assembled     SmartType = "assembled"
	Disassembled  SmartType = "disassembled"
)

// typeTheme is the stored type tag of a theme section.
const typeTheme = "theme"

// Config is one entry of a home configuration: either a SmartSection or a
// ThemeSection.
type Config interface {
	// Key is the identity used for de-duplication.
	Key() string
	isConfig()
}

// SmartSection references a registry entry by type.
type SmartSection struct {
	Type SmartType
}

// ThemeSection shows every set in one theme.
type ThemeSection struct {
	ThemeName string
}

func (s SmartSection) Key() string { return string(s.Type) }
func (SmartSection) isConfig()     {}

func (t ThemeSection) Key() string { return ThemeKey(t.ThemeName) }
func (ThemeSection) isConfig()     {}

// Smart returns a smart section config.
func Smart(t SmartType) Config { return SmartSection{Type: t} }

// Theme returns a theme section config.
func Theme(name string) Config { return ThemeSection{ThemeName: name} }

// ThemeKey is the derived key of a theme section.
func ThemeKey(name string) string {
	return typeTheme + ":" + strings.ToLower(name)
}

// Keys returns the derived key of every entry, in order.
func Keys(list []Config) []string {
	keys := make([]string, len(list))
	for i, c := range list {
		keys[i] = c.Key()
	}
	return keys
}

// Contains reports whether list already holds an entry with key.
func Contains(list []Config, key string) bool {
	for _, c := range list {
		if c.Key() == key {
			return true
		}
	}
	return false
}

// Clone returns a copy of list that shares no backing array with it.
func Clone(list []Config) []Config {
	if list == nil {
		return nil
	}
	out := make([]Config, len(list))
	copy(out, list)
	return out
}

// stored is the on-disk shape: {type: <smart type>} or
// {type: theme, themeName: <name>}.
type stored struct {
	Type      string `json:"type" yaml:"type"`
	ThemeName string `json:"themeName,omitempty" yaml:"themeName,omitempty"`
}

func toStored(c Config) (stored, error) {
	switch v := c.(type) {
	case SmartSection:
		return stored{Type: string(v.Type)}, nil
	case ThemeSection:
		return stored{Type: typeTheme, ThemeName: v.ThemeName}, nil
	default:
		return stored{}, fmt.Errorf("unsupported section config %T", c)
	}
}

// fromStored never fails: unknown types become a SmartSection the resolver
// will skip, so they survive a load/save round trip untouched.
func fromStored(s stored) Config {
	if s.Type == typeTheme {
		return ThemeSection{ThemeName: s.ThemeName}
	}
	return SmartSection{Type: SmartType(s.Type)}
}

// List is a serialisable configuration list.
type List []Config

// MarshalJSON implements json.Marshaler.
func (l List) MarshalJSON() ([]byte, error) {
	out, err := l.toStored()
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *List) UnmarshalJSON(data []byte) error {
	var in []stored
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parsing section config: %w", err)
	}
	*l = fromStoredList(in)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (l List) MarshalYAML() (any, error) {
	return l.toStored()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *List) UnmarshalYAML(node *yaml.Node) error {
	var in []stored
	if err := node.Decode(&in); err != nil {
		return fmt.Errorf("parsing section config: %w", err)
	}
	*l = fromStoredList(in)
	return nil
}

func (l List) toStored() ([]stored, error) {
	out := make([]stored, 0, len(l))
	for _, c := range l {
		s, err := toStored(c)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func fromStoredList(in []stored) List {
	if in == nil {
		return nil
	}
	out := make(List, 0, len(in))
	for _, s := range in {
		out = append(out, fromStored(s))
	}
	return out
}
