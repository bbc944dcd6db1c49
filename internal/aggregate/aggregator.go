// Package aggregate merges token listings fetched across every
// (category, interval) axis into one deduplicated record set.
package aggregate

import (
	"context"

	"github.com/rs/zerolog"

	"token-radar/internal/domain"
)

// Lister fetches the listing for one (category, interval) axis.
type Lister interface {
	TopTokens(ctx context.Context, category, interval string) ([]domain.TokenRecord, error)
}

// Aggregator collects listings across a fixed category and interval set.
type Aggregator struct {
	lister     Lister
	categories []string
	intervals  []string
	logger     zerolog.Logger
}

// Options configures an Aggregator.
type Options struct {
	Lister     Lister
	Categories []string
	Intervals  []string
	Logger     zerolog.Logger
}

// New creates an Aggregator.
func New(opts Options) *Aggregator {
	return &Aggregator{
		lister:     opts.Lister,
		categories: opts.Categories,
		intervals:  opts.Intervals,
		logger:     opts.Logger,
	}
}

// Collect fetches every axis sequentially, concatenates the results and
// deduplicates them by token ID. A failed axis is logged and contributes
// zero records; it never aborts the run.
func (a *Aggregator) Collect(ctx context.Context) []domain.TokenRecord {
	var all []domain.TokenRecord
	for _, category := range a.categories {
		for _, interval := range a.intervals {
			records, err := a.lister.TopTokens(ctx, category, interval)
			if err != nil {
				a.logger.Warn().
					Err(err).
					Str("category", category).
					Str("interval", interval).
					Msg("listing fetch failed")
				continue
			}
			a.logger.Debug().
				Str("category", category).
				Str("interval", interval).
				Int("tokens", len(records)).
				Msg("listing fetched")
			all = append(all, records...)
		}
	}
	return Dedup(all)
}

// Dedup collapses repeated observations of the same token ID to a single
// record. The last observation in fetch order wins; the output keeps the
// order in which IDs were first seen.
func Dedup(records []domain.TokenRecord) []domain.TokenRecord {
	index := make(map[string]int, len(records))
	out := make([]domain.TokenRecord, 0, len(records))
	for _, rec := range records {
		if i, seen := index[rec.ID]; seen {
			out[i] = rec
			continue
		}
		index[rec.ID] = len(out)
		out = append(out, rec)
	}
	return out
}
