package sections

import (
	"math/rand/v2"

	"github.com/ruminaider/brickshelf/internal/collection"
	"go.uber.org/zap"
)

// Resolved is a populated section ready to render.
type Resolved struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Sets          []collection.Set `json:"sets"`
	EmptyMessage  string           `json:"emptyMessage"`
	MaxItems      int              `json:"maxItems,omitempty"`
	ViewAllFilter string           `json:"viewAllFilter,omitempty"`
}

// Visible returns the sets a carousel shows: the first MaxItems, or all of
// them when uncapped.
func (r Resolved) Visible() []collection.Set {
	if r.MaxItems > 0 && len(r.Sets) > r.MaxItems {
		return r.Sets[:r.MaxItems]
	}
	return r.Sets
}

// DefaultConfig returns a fresh copy of the built-in home configuration.
func DefaultConfig() []Config {
	return []Config{
		Smart(InProgress),
		Smart(Discover),
		Smart(RecentlyAdded),
		Smart(Largest),
	}
}

// IsDefaultConfig reports whether list has the same derived keys as the
// default, in the same order.
func IsDefaultConfig(list []Config) bool {
	def := DefaultConfig()
	if len(list) != len(def) {
		return false
	}
	for i := range list {
		if list[i].Key() != def[i].Key() {
			return false
		}
	}
	return true
}

// Resolver turns a configuration into populated sections.
type Resolver struct {
	shuffle Shuffler
	logger  *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRand makes the discover shuffle draw from r. Used by tests that want a
// reproducible order.
func WithRand(r *rand.Rand) Option {
	return func(res *Resolver) { res.shuffle = r.Shuffle }
}

// WithLogger sets the logger used to report skipped entries.
func WithLogger(l *zap.Logger) Option {
	return func(res *Resolver) { res.logger = l }
}

// NewResolver returns a Resolver. By default discover re-shuffles on every
// call using the global source.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		shuffle: rand.Shuffle,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve builds the sections for configs against sets. A nil configs uses
// DefaultConfig; an empty non-nil slice yields nothing. Output follows the
// input order, sections with no sets are dropped, and unknown smart types
// are skipped.
func (r *Resolver) Resolve(configs []Config, sets []collection.Set) []Resolved {
	if configs == nil {
		configs = DefaultConfig()
	}

	out := make([]Resolved, 0, len(configs))
	for _, cfg := range configs {
		var def Definition
		switch c := cfg.(type) {
		case SmartSection:
			d, ok := Lookup(c.Type)
			if !ok {
				r.logger.Debug("skipping unknown section type", zap.String("type", string(c.Type)))
				continue
			}
			def = d
		case ThemeSection:
			def = ThemeDefinition(c.ThemeName)
		default:
			r.logger.Debug("skipping unsupported section config", zap.Any("config", cfg))
			continue
		}

		ranked := def.Rank(sets, r.shuffle)
		if len(ranked) == 0 {
			continue
		}
		out = append(out, Resolved{
			ID:            cfg.Key(),
			Title:         def.Title,
			Sets:          ranked,
			EmptyMessage:  def.EmptyMessage,
			MaxItems:      def.MaxItems,
			ViewAllFilter: def.ViewAllFilter,
		})
	}
	return out
}

// State is what a home view should show overall.
type State int

const (
	// NoSectionsConfigured means the configuration list itself is empty.
	NoSectionsConfigured State = iota
	// AllSectionsEmpty means sections are configured but none had sets.
	AllSectionsEmpty
	// HasContent means at least one section resolved with sets.
	HasContent
)

// String returns a short identifier for the state.
func (s State) String() string {
	switch s {
	case NoSectionsConfigured:
		return "no_sections"
	case AllSectionsEmpty:
		return "all_empty"
	case HasContent:
		return "content"
	default:
		return "unknown"
	}
}

// Summarize classifies a resolution. configs is the effective list that was
// resolved, i.e. after any default was applied.
func Summarize(configs []Config, resolved []Resolved) State {
	switch {
	case len(configs) == 0:
		return NoSectionsConfigured
	case len(resolved) == 0:
		return AllSectionsEmpty
	default:
		return HasContent
	}
}
