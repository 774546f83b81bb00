// Package collection holds the set records a user owns and the SQLite store
// that persists them.
package collection

import (
	"sort"
	"strings"
	"time"
)

// Set is one physical LEGO set in a collection.
type Set struct {
	ID           string    `json:"id"`
	Number       string    `json:"number,omitempty"`
	Name         string    `json:"name"`
	Theme        *string   `json:"theme"`
	PieceCount   *int      `json:"pieceCount"`
	Year         *int      `json:"year"`
	Status       Status    `json:"status"`
	DateReceived DateValue `json:"dateReceived"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// ThemeName returns the theme or "" when unset.
func (s Set) ThemeName() string {
	if s.Theme == nil {
		return ""
	}
	return *s.Theme
}

// Themes returns the distinct theme names across sets, sorted
// case-insensitively. The first spelling seen for each theme wins.
func Themes(sets []Set) []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range sets {
		name := strings.TrimSpace(s.ThemeName())
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})
	return names
}

// RecentlyReceived returns the sets that carry any date received, newest
// first by ISO date. Sets whose date cannot be normalised sort last. The
// input is not modified.
func RecentlyReceived(sets []Set) []Set {
	out := make([]Set, 0, len(sets))
	for _, s := range sets {
		if !s.DateReceived.IsZero() {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateReceived.ISO() > out[j].DateReceived.ISO()
	})
	return out
}

// Ptr returns a pointer to v. Handy for the optional fields on Set.
func Ptr[T any](v T) *T {
	return &v
}
