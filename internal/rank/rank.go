// Package rank computes the derived views of the scanner: market-cap
// filtering, sorted listings and time-windowed averages. All functions are
// pure; time-windowed views take the run's single captured "now".
package rank

import (
	"sort"
	"time"

	"token-radar/internal/domain"
)

// RecencyWindow is the lookback used by the "created recently" views.
const RecencyWindow = 24 * time.Hour

// TopN is the length of the top-ranked views.
const TopN = 5

// CapFilter keeps tokens whose market cap is present and inside
// [minCap, maxCap] inclusive. Tokens without a numeric cap are excluded
// silently. Input order is preserved.
func CapFilter(tokens []domain.TokenRecord, minCap, maxCap float64) []domain.TokenRecord {
	var out []domain.TokenRecord
	for _, t := range tokens {
		if t.MarketCap == nil {
			continue
		}
		if *t.MarketCap >= minCap && *t.MarketCap <= maxCap {
			out = append(out, t)
		}
	}
	return out
}

// FilteredAscending returns the cap-filtered tokens sorted by market cap
// ascending. Ties keep their original relative order.
func FilteredAscending(tokens []domain.TokenRecord, minCap, maxCap float64) []domain.TokenRecord {
	out := CapFilter(tokens, minCap, maxCap)
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].MarketCap < *out[j].MarketCap
	})
	return out
}

// AvgCap returns the arithmetic mean market cap over tokens that carry one,
// with the number of tokens that contributed. A zero count means the mean is
// undefined.
func AvgCap(tokens []domain.TokenRecord) (float64, int) {
	var sum float64
	var n int
	for _, t := range tokens {
		if t.MarketCap == nil {
			continue
		}
		sum += *t.MarketCap
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

// AvgCapRecent returns the mean market cap over tokens created within the
// recency window that carry a cap, with the contributing count.
func AvgCapRecent(tokens []domain.TokenRecord, now time.Time) (float64, int) {
	return AvgCap(recentWithCap(tokens, now))
}

// TopByCap returns up to TopN tokens created within the recency window,
// sorted by market cap descending. Ties keep their original relative order.
func TopByCap(tokens []domain.TokenRecord, now time.Time) []domain.TokenRecord {
	out := recentWithCap(tokens, now)
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].MarketCap > *out[j].MarketCap
	})
	return head(out, TopN)
}

// TopByVolume returns up to TopN tokens created within the recency window
// with positive 24h volume, sorted by volume descending. Ties keep their
// original relative order.
func TopByVolume(tokens []domain.TokenRecord, now time.Time) []domain.TokenRecord {
	cutoff := now.Add(-RecencyWindow)
	var out []domain.TokenRecord
	for _, t := range tokens {
		if t.CreatedWithin(cutoff) && t.Volume24h > 0 {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Volume24h > out[j].Volume24h
	})
	return head(out, TopN)
}

func recentWithCap(tokens []domain.TokenRecord, now time.Time) []domain.TokenRecord {
	cutoff := now.Add(-RecencyWindow)
	var out []domain.TokenRecord
	for _, t := range tokens {
		if t.CreatedWithin(cutoff) && t.MarketCap != nil {
			out = append(out, t)
		}
	}
	return out
}

func head(tokens []domain.TokenRecord, n int) []domain.TokenRecord {
	if len(tokens) > n {
		return tokens[:n]
	}
	return tokens
}
