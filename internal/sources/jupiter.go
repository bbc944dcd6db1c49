package sources

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"token-radar/internal/domain"
)

// DefaultListingsBaseURL is the Jupiter lite API base URL.
const DefaultListingsBaseURL = "https://lite-api.jup.ag"

// Listing axes queried by the scanner: every category is combined with every
// interval.
var (
	Categories = []string{"toporganicscore", "toptraded", "toptrending"}
	Intervals  = []string{"5m", "1h", "6h", "24h"}
)

const (
	listingsLimit   = 100
	createdAtLayout = "2006-01-02T15:04:05Z"
)

// ListingsClient fetches ranked token listings from the Jupiter lite API.
type ListingsClient struct {
	baseURL string
	client  *http.Client
}

// NewListingsClient creates a listings client with a bounded request timeout.
func NewListingsClient(opts ...Option) *ListingsClient {
	o := options{
		baseURL: DefaultListingsBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &ListingsClient{baseURL: o.baseURL, client: o.client}
}

// listedToken is the wire shape of one Jupiter listing entry. Mcap arrives
// as a number, a numeric string, or null depending on the token.
type listedToken struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Mcap        any     `json:"mcap"`
	Liquidity   float64 `json:"liquidity"`
	HolderCount int     `json:"holderCount"`
	Launchpad   string  `json:"launchpad"`
	FirstPool   struct {
		CreatedAt string `json:"createdAt"`
	} `json:"firstPool"`
	Stats24h struct {
		BuyVolume  float64 `json:"buyVolume"`
		SellVolume float64 `json:"sellVolume"`
	} `json:"stats24h"`
}

// TopTokens fetches the listing for one (category, interval) axis.
func (c *ListingsClient) TopTokens(ctx context.Context, category, interval string) ([]domain.TokenRecord, error) {
	url := fmt.Sprintf("%s/tokens/v2/%s/%s?limit=%d", c.baseURL, category, interval, listingsLimit)

	var raw []listedToken
	if err := getJSON(ctx, c.client, url, &raw); err != nil {
		return nil, fmt.Errorf("listings %s/%s: %w", category, interval, err)
	}

	records := make([]domain.TokenRecord, 0, len(raw))
	for i := range raw {
		records = append(records, raw[i].record())
	}
	return records, nil
}

// record converts a wire entry to a TokenRecord, degrading malformed fields
// instead of failing: a non-numeric mcap becomes nil, an unparseable
// creation timestamp becomes nil, missing volume components count as zero.
func (t *listedToken) record() domain.TokenRecord {
	rec := domain.TokenRecord{
		ID:          t.ID,
		Name:        t.Name,
		Symbol:      t.Symbol,
		MarketCap:   numeric(t.Mcap),
		Liquidity:   t.Liquidity,
		HolderCount: t.HolderCount,
		Launchpad:   t.Launchpad,
		Volume24h:   t.Stats24h.BuyVolume + t.Stats24h.SellVolume,
	}
	if ts, err := time.Parse(createdAtLayout, t.FirstPool.CreatedAt); err == nil {
		ts = ts.UTC()
		rec.CreatedAt = &ts
	}
	return rec
}

// numeric coerces a decoded JSON value to a finite float64, accepting
// numbers and numeric strings. Everything else maps to nil.
func numeric(v any) *float64 {
	switch x := v.(type) {
	case float64:
		return &x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	default:
		return nil
	}
}
