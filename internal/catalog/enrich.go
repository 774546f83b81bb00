package catalog

import (
	"context"
	"fmt"

	"github.com/ruminaider/brickshelf/internal/collection"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// API is the part of Client the enricher needs.
type API interface {
	GetSet(ctx context.Context, number string) (*SetInfo, error)
	GetTheme(ctx context.Context, id int) (*ThemeInfo, error)
}

var _ API = (*Client)(nil)

// Result is the outcome of enriching one set.
type Result struct {
	Set     collection.Set
	Changed bool
	Err     error
}

// Enrich fills empty fields of s from the catalog. Fields the user already
// set are never overwritten.
func Enrich(ctx context.Context, api API, s collection.Set) (collection.Set, bool, error) {
	if s.Number == "" {
		return s, false, fmt.Errorf("set %q has no set number", s.Name)
	}
	info, err := api.GetSet(ctx, s.Number)
	if err != nil {
		return s, false, err
	}

	changed := false
	if s.Name == "" && info.Name != "" {
		s.Name = info.Name
		changed = true
	}
	if s.Year == nil && info.Year > 0 {
		s.Year = collection.Ptr(info.Year)
		changed = true
	}
	if s.PieceCount == nil && info.NumParts > 0 {
		s.PieceCount = collection.Ptr(info.NumParts)
		changed = true
	}
	if s.ImageURL == "" && info.ImageURL != "" {
		s.ImageURL = info.ImageURL
		changed = true
	}
	if s.Theme == nil && info.ThemeID > 0 {
		theme, err := api.GetTheme(ctx, info.ThemeID)
		if err != nil {
			return s, changed, err
		}
		s.Theme = collection.Ptr(theme.Name)
		changed = true
	}
	return s, changed, nil
}

// EnrichAll enriches sets with at most concurrency requests in flight.
// Per-set failures are reported in the results; only context cancellation
// aborts the batch. Results are in input order.
func EnrichAll(ctx context.Context, api API, sets []collection.Set, concurrency int, logger *zap.Logger) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(sets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, s := range sets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			updated, changed, err := Enrich(gctx, api, s)
			if err != nil {
				logger.Warn("enrichment failed", zap.String("set", s.ID), zap.String("number", s.Number), zap.Error(err))
			}
			results[i] = Result{Set: updated, Changed: changed, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
