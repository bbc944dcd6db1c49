// Package report assembles and renders the scanner's console report.
package report

import (
	"context"
	"time"

	"token-radar/internal/domain"
	"token-radar/internal/rank"
)

// PaymentResolver resolves a token's listing-payment status.
type PaymentResolver interface {
	PaymentStatus(ctx context.Context, chain, address string) string
}

// Report is the full scanner output for one run.
type Report struct {
	GeneratedAt time.Time
	MinCap      float64
	MaxCap      float64

	// Averages. A zero count marks an empty source set.
	AvgCapRecent        float64
	AvgCapRecentCount   int
	AvgCapFiltered      float64
	AvgCapFilteredCount int

	TopByCap    []Row
	TopByVolume []Row
	Filtered    []Row
}

// Row is one rendered token line.
type Row struct {
	Name          string
	Symbol        string
	Address       string
	CreatedAgo    string
	Launchpad     string
	Liquidity     int64
	HolderCount   int
	MarketCap     int64
	Volume24h     int64
	PaymentStatus string
}

// Options configures report assembly.
type Options struct {
	Payments PaymentResolver
	Chain    string // chain passed to payment lookups
	MinCap   float64
	MaxCap   float64
	Now      time.Time // single captured timestamp for every windowed view
}

// Build computes every derived view over the deduplicated token set and
// resolves the payment status of each reported token, one lookup at a time.
func Build(ctx context.Context, tokens []domain.TokenRecord, opts Options) *Report {
	filtered := rank.FilteredAscending(tokens, opts.MinCap, opts.MaxCap)

	r := &Report{
		GeneratedAt: opts.Now,
		MinCap:      opts.MinCap,
		MaxCap:      opts.MaxCap,
	}
	r.AvgCapRecent, r.AvgCapRecentCount = rank.AvgCapRecent(tokens, opts.Now)
	r.AvgCapFiltered, r.AvgCapFilteredCount = rank.AvgCap(filtered)

	r.TopByCap = rows(ctx, rank.TopByCap(tokens, opts.Now), opts)
	r.TopByVolume = rows(ctx, rank.TopByVolume(tokens, opts.Now), opts)
	r.Filtered = rows(ctx, filtered, opts)
	return r
}

func rows(ctx context.Context, tokens []domain.TokenRecord, opts Options) []Row {
	out := make([]Row, 0, len(tokens))
	for i := range tokens {
		out = append(out, row(ctx, &tokens[i], opts))
	}
	return out
}

func row(ctx context.Context, t *domain.TokenRecord, opts Options) Row {
	r := Row{
		Name:        t.Name,
		Symbol:      t.Symbol,
		Address:     t.ID,
		CreatedAgo:  TimeAgo(t.CreatedAt, opts.Now),
		Launchpad:   t.EffectiveLaunchpad(),
		Liquidity:   int64(t.Liquidity),
		HolderCount: t.HolderCount,
		Volume24h:   int64(t.Volume24h),
	}
	if r.Launchpad == "" {
		r.Launchpad = "Unknown"
	}
	if t.MarketCap != nil {
		r.MarketCap = int64(*t.MarketCap)
	}
	if opts.Payments != nil {
		r.PaymentStatus = opts.Payments.PaymentStatus(ctx, opts.Chain, t.ID)
	}
	return r
}
