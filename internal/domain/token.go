package domain

import "time"

// Launchpad label constants used by the normalization rule.
const (
	LaunchpadMetDBC     = "met-dbc"
	LaunchpadTimeDotFun = "timedotfun"
)

// TokenRecord is one observation of a token listing.
// ID (the chain address) uniquely identifies a record within a run; when the
// same ID is observed on multiple listing axes, the last observation wins.
type TokenRecord struct {
	ID          string
	Name        string
	Symbol      string
	MarketCap   *float64 // nil when the upstream value is absent or non-numeric
	Liquidity   float64
	HolderCount int
	Launchpad   string
	CreatedAt   *time.Time // first pool creation time (UTC), nil if unknown
	Volume24h   float64    // buy-side + sell-side 24h volume
}

// EffectiveLaunchpad applies the launchpad normalization rule: tokens whose
// address ends in "time" and that report the "met-dbc" launchpad are
// relabeled "timedotfun". Every other combination passes through unchanged.
func (t *TokenRecord) EffectiveLaunchpad() string {
	if t.Launchpad == LaunchpadMetDBC && len(t.ID) >= 4 && t.ID[len(t.ID)-4:] == "time" {
		return LaunchpadTimeDotFun
	}
	return t.Launchpad
}

// CreatedWithin reports whether the token's first pool was created at or
// after the cutoff. Tokens with unknown creation time are never within any
// window.
func (t *TokenRecord) CreatedWithin(cutoff time.Time) bool {
	return t.CreatedAt != nil && !t.CreatedAt.Before(cutoff)
}
