package sections

import (
	"net/url"
	"sort"
	"strings"

	"github.com/ruminaider/brickshelf/internal/collection"
)

// carouselCap is the display cap shared by the ranked carousels.
const carouselCap = 10

// Shuffler permutes n elements in place by calling swap. rand.Shuffle and
// (*rand.Rand).Shuffle both satisfy it.
type Shuffler func(n int, swap func(i, j int))

// RankFunc orders and filters sets for a section. It must not modify sets.
type RankFunc func(sets []collection.Set, shuffle Shuffler) []collection.Set

// Definition describes how a smart section is built and shown.
type Definition struct {
	Type          SmartType
	Title         string
	Description   string
	EmptyMessage  string
	MaxItems      int // 0 means uncapped
	ViewAllFilter string
	Rank          RankFunc
}

// AllSmartTypes lists every smart section in picker order.
var AllSmartTypes = []SmartType{
	InProgress,
	Discover,
	RecentlyAdded,
	Largest,
	Smallest,
	NewestYear,
	OldestYear,
	Unopened,
	Assembled,
	Disassembled,
}

var registry = map[SmartType]Definition{
	InProgress: {
		Type:          InProgress,
		Title:         "Currently Building",
		Description:   "Sets you are building or rebuilding right now",
		EmptyMessage:  "Nothing on the building table.",
		ViewAllFilter: "status=in_progress",
		Rank: func(sets []collection.Set, _ Shuffler) []collection.Set {
			return filter(sets, hasStatus(collection.StatusInProgress, collection.StatusRebuildInProgress))
		},
	},
	Discover: {
		Type:         Discover,
		Title:        "Discover",
		Description:  "A random pick of sealed or taken-apart sets to build next",
		EmptyMessage: "Every set is built. Time to shop.",
		MaxItems:     carouselCap,
		Rank: func(sets []collection.Set, shuffle Shuffler) []collection.Set {
			out := filter(sets, hasStatus(collection.StatusUnopened, collection.StatusDisassembled))
			shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
			return out
		},
	},
	RecentlyAdded: {
		Type:          RecentlyAdded,
		Title:         "Recently Added",
		Description:   "Newest arrivals by date received",
		EmptyMessage:  "No sets have a date received yet.",
		MaxItems:      carouselCap,
		ViewAllFilter: "sort=recent",
		Rank: func(sets []collection.Set, _ Shuffler) []collection.Set {
			return collection.RecentlyReceived(sets)
		},
	},
	Largest: {
		Type:          Largest,
		Title:         "Biggest Builds",
		Description:   "Highest piece counts first",
		EmptyMessage:  "No piece counts recorded.",
		MaxItems:      carouselCap,
		ViewAllFilter: "sort=pieces_desc",
		Rank: func(sets []collection.Set, _ Shuffler) []collection.Set {
			return sortedBy(sets, pieceCount, true)
		},
	},
	Smallest: {
		Type:          Smallest,
		Title:         "Quick Builds",
		Description:   "Lowest piece counts first",
		EmptyMessage:  "No piece counts recorded.",
		MaxItems:      carouselCap,
		ViewAllFilter: "sort=pieces_asc",
		Rank: func(sets []collection.Set, _ Shuffler) []collection.Set {
			return sortedBy(sets, pieceCount, false)
		},
	},
	NewestYear: {
		Type:          NewestYear,
		Title:         "Newest Sets",
		Description:   "Most recent release years first",
		EmptyMessage:  "No release years recorded.",
		MaxItems:      carouselCap,
		ViewAllFilter: "sort=year_desc",
		Rank: func(sets []collection.Set, _ Shuffler) []collection.Set {
			return sortedBy(sets, year, true)
		},
	},
	OldestYear: {
		Type:          OldestYear,
		Title:         "Vintage Sets",
		Description:   "Oldest release years first",
		EmptyMessage:  "No release years recorded.",
		MaxItems:      carouselCap,
		ViewAllFilter: "sort=year_asc",
		Rank: func(sets []collection.Set, _ Shuffler) []collection.Set {
			return sortedBy(sets, year, false)
		},
	},
	Unopened: {
		Type:          Unopened,
		Title:         "Still Sealed",
		Description:   "Sets that have never been opened",
		EmptyMessage:  "Every box has been opened.",
		ViewAllFilter: "status=unopened",
		Rank: func(sets []collection.Set, _ Shuffler) []collection.Set {
			return filter(sets, hasStatus(collection.StatusUnopened))
		},
	},
	Assembled: {
		Type:          Assembled,
		Title:         "On Display",
		Description:   "Finished builds",
		EmptyMessage:  "Nothing assembled yet.",
		ViewAllFilter: "status=assembled",
		Rank: func(sets []collection.Set, _ Shuffler) []collection.Set {
			return filter(sets, hasStatus(collection.StatusAssembled))
		},
	},
	Disassembled: {
		Type:          Disassembled,
		Title:         "In Pieces",
		Description:   "Sets that were built and taken apart",
		EmptyMessage:  "Nothing has been taken apart.",
		ViewAllFilter: "status=disassembled",
		Rank: func(sets []collection.Set, _ Shuffler) []collection.Set {
			return filter(sets, hasStatus(collection.StatusDisassembled))
		},
	},
}

// Lookup returns the registry entry for t.
func Lookup(t SmartType) (Definition, bool) {
	def, ok := registry[t]
	return def, ok
}

// Known reports whether t is a registered smart type.
func Known(t SmartType) bool {
	_, ok := registry[t]
	return ok
}

// ThemeDefinition synthesises the entry for a theme section.
func ThemeDefinition(name string) Definition {
	return Definition{
		Title:         name,
		Description:   "Every set in the " + name + " theme",
		EmptyMessage:  "No " + name + " sets in the collection.",
		ViewAllFilter: "theme=" + queryEscape(name),
		Rank: func(sets []collection.Set, _ Shuffler) []collection.Set {
			return filter(sets, func(s collection.Set) bool {
				return s.Theme != nil && strings.EqualFold(*s.Theme, name)
			})
		},
	}
}

// queryEscape encodes spaces as %20 rather than '+', matching what browsers
// produce for a query component.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func filter(sets []collection.Set, keep func(collection.Set) bool) []collection.Set {
	out := make([]collection.Set, 0, len(sets))
	for _, s := range sets {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func hasStatus(statuses ...collection.Status) func(collection.Set) bool {
	return func(s collection.Set) bool {
		for _, st := range statuses {
			if s.Status == st {
				return true
			}
		}
		return false
	}
}

func pieceCount(s collection.Set) *int { return s.PieceCount }
func year(s collection.Set) *int       { return s.Year }

// sortedBy keeps sets where field is set and stable-sorts them on it.
func sortedBy(sets []collection.Set, field func(collection.Set) *int, desc bool) []collection.Set {
	out := filter(sets, func(s collection.Set) bool { return field(s) != nil })
	sort.SliceStable(out, func(i, j int) bool {
		a, b := *field(out[i]), *field(out[j])
		if desc {
			return a > b
		}
		return a < b
	})
	return out
}
