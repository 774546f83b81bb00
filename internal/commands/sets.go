package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ruminaider/brickshelf/internal/catalog"
	"github.com/ruminaider/brickshelf/internal/collection"
	"go.uber.org/zap"
)

// AddSetInput is what the add command collects.
type AddSetInput struct {
	Number       string
	Name         string
	Theme        string
	PieceCount   int
	Year         int
	Status       string
	DateReceived string
}

// ToSet validates the input and builds a Set. Zero numbers and blank
// strings mean "unknown".
func (in AddSetInput) ToSet() (collection.Set, error) {
	if strings.TrimSpace(in.Name) == "" && strings.TrimSpace(in.Number) == "" {
		return collection.Set{}, fmt.Errorf("a set needs a name or a set number")
	}
	status := collection.StatusUnopened
	if in.Status != "" {
		st, err := collection.ParseStatus(in.Status)
		if err != nil {
			return collection.Set{}, err
		}
		status = st
	}

	s := collection.Set{
		Number: strings.TrimSpace(in.Number),
		Name:   strings.TrimSpace(in.Name),
		Status: status,
	}
	if t := strings.TrimSpace(in.Theme); t != "" {
		s.Theme = collection.Ptr(t)
	}
	if in.PieceCount > 0 {
		s.PieceCount = collection.Ptr(in.PieceCount)
	}
	if in.Year > 0 {
		s.Year = collection.Ptr(in.Year)
	}
	if in.DateReceived != "" {
		d := collection.Date(in.DateReceived)
		if d.ISO() == "" {
			return collection.Set{}, fmt.Errorf("date received %q is not YYYY-MM-DD", in.DateReceived)
		}
		s.DateReceived = d
	}
	return s, nil
}

// AddSet stores a new set. When enrich is true and the set has a number,
// missing fields are filled from the catalog first; a catalog failure is
// logged and the set is stored as entered.
func AddSet(ctx context.Context, app *App, in AddSetInput, enrich bool) (collection.Set, error) {
	s, err := in.ToSet()
	if err != nil {
		return collection.Set{}, err
	}
	if enrich && s.Number != "" {
		enriched, _, err := catalog.Enrich(ctx, app.Catalog, s)
		if err != nil {
			app.Logger.Warn("catalog lookup failed; storing as entered", zap.String("number", s.Number), zap.Error(err))
		} else {
			s = enriched
		}
	}
	return app.DB.AddSet(ctx, app.User, s)
}

// ListSets returns the user's sets, optionally filtered by status.
func ListSets(ctx context.Context, app *App, status string) ([]collection.Set, error) {
	sets, err := app.DB.ListSets(ctx, app.User)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return sets, nil
	}
	st, err := collection.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	var out []collection.Set
	for _, s := range sets {
		if s.Status == st {
			out = append(out, s)
		}
	}
	return out, nil
}

// SetStatus changes a set's status.
func SetStatus(ctx context.Context, app *App, id, status string) error {
	st, err := collection.ParseStatus(status)
	if err != nil {
		return err
	}
	return app.DB.UpdateStatus(ctx, app.User, id, st)
}

// RemoveSet deletes a set.
func RemoveSet(ctx context.Context, app *App, id string) error {
	return app.DB.DeleteSet(ctx, app.User, id)
}

// EnrichResult summarises a bulk enrichment.
type EnrichResult struct {
	Updated []collection.Set
	Skipped []collection.Set
	Failed  map[string]error
}

// EnrichSets fills catalog data for the given ids, or every set with a
// number when ids is empty.
func EnrichSets(ctx context.Context, app *App, ids []string) (*EnrichResult, error) {
	all, err := app.DB.ListSets(ctx, app.User)
	if err != nil {
		return nil, err
	}

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var targets []collection.Set
	for _, s := range all {
		if len(ids) > 0 && !want[s.ID] {
			continue
		}
		if s.Number == "" {
			continue
		}
		targets = append(targets, s)
	}

	results, err := catalog.EnrichAll(ctx, app.Catalog, targets, app.Config.Catalog.Concurrency, app.Logger)
	if err != nil {
		return nil, err
	}

	out := &EnrichResult{Failed: map[string]error{}}
	for _, r := range results {
		switch {
		case r.Err != nil:
			out.Failed[r.Set.ID] = r.Err
		case !r.Changed:
			out.Skipped = append(out.Skipped, r.Set)
		default:
			if err := app.DB.UpdateSet(ctx, app.User, r.Set); err != nil {
				out.Failed[r.Set.ID] = err
				continue
			}
			out.Updated = append(out.Updated, r.Set)
		}
	}
	return out, nil
}

// ImportSets loads a JSON export (an array of sets) into the collection.
// Dates may be ISO strings or legacy {seconds, nanoseconds} objects; both
// are stored as given. Records with an unknown status fall back to
// unopened.
func ImportSets(ctx context.Context, app *App, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading import file: %w", err)
	}

	var raw []struct {
		collection.Set
		Status string `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("parsing import file: %w", err)
	}

	count := 0
	for _, r := range raw {
		s := r.Set
		st, err := collection.ParseStatus(r.Status)
		if err != nil {
			app.Logger.Warn("unknown status on import", zap.String("name", s.Name), zap.String("status", r.Status))
			st = collection.StatusUnopened
		}
		s.Status = st
		if _, err := app.DB.AddSet(ctx, app.User, s); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
