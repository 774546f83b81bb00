package commands

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/ruminaider/brickshelf/internal/collection"
)

// FilterSets applies a view-all filter such as "status=unopened",
// "theme=Star%20Wars" or "sort=pieces_desc" to sets. Sorting drops sets
// that lack the sort field, the same way the matching home section does.
func FilterSets(sets []collection.Set, filter string) ([]collection.Set, error) {
	q, err := url.ParseQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("parsing filter %q: %w", filter, err)
	}
	out := append([]collection.Set(nil), sets...)

	for key, values := range q {
		v := values[len(values)-1]
		switch key {
		case "status":
			st, err := collection.ParseStatus(v)
			if err != nil {
				return nil, err
			}
			out = keep(out, func(s collection.Set) bool {
				if st == collection.StatusInProgress {
					return s.Status == collection.StatusInProgress || s.Status == collection.StatusRebuildInProgress
				}
				return s.Status == st
			})
		case "theme":
			out = keep(out, func(s collection.Set) bool {
				return strings.EqualFold(s.ThemeName(), v)
			})
		case "sort":
		default:
			return nil, fmt.Errorf("unknown filter key %q", key)
		}
	}

	if q.Has("sort") {
		return sortSets(out, q.Get("sort"))
	}
	return out, nil
}

func sortSets(sets []collection.Set, by string) ([]collection.Set, error) {
	var field func(collection.Set) *int
	desc := false
	switch by {
	case "recent":
		return collection.RecentlyReceived(sets), nil
	case "pieces_desc":
		field, desc = func(s collection.Set) *int { return s.PieceCount }, true
	case "pieces_asc":
		field = func(s collection.Set) *int { return s.PieceCount }
	case "year_desc":
		field, desc = func(s collection.Set) *int { return s.Year }, true
	case "year_asc":
		field = func(s collection.Set) *int { return s.Year }
	default:
		return nil, fmt.Errorf("unknown sort %q", by)
	}

	out := keep(sets, func(s collection.Set) bool { return field(s) != nil })
	sort.SliceStable(out, func(i, j int) bool {
		a, b := *field(out[i]), *field(out[j])
		if desc {
			return a > b
		}
		return a < b
	})
	return out, nil
}

func keep(sets []collection.Set, pred func(collection.Set) bool) []collection.Set {
	out := make([]collection.Set, 0, len(sets))
	for _, s := range sets {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}
