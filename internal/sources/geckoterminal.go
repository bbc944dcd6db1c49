package sources

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// DefaultPriceBaseURL is the GeckoTerminal API base URL.
const DefaultPriceBaseURL = "https://api.geckoterminal.com"

// PriceClient fetches live token prices from GeckoTerminal.
type PriceClient struct {
	baseURL string
	client  *http.Client
}

// NewPriceClient creates a price client with a bounded request timeout.
func NewPriceClient(opts ...Option) *PriceClient {
	o := options{
		baseURL: DefaultPriceBaseURL,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &PriceClient{baseURL: o.baseURL, client: o.client}
}

type tokenInfoResponse struct {
	Data struct {
		Attributes struct {
			PriceUSD *string `json:"price_usd"`
		} `json:"attributes"`
	} `json:"data"`
}

// TokenPriceUSD returns the current USD price of a token, or nil when the
// upstream reports no price for it.
func (c *PriceClient) TokenPriceUSD(ctx context.Context, network, address string) (*float64, error) {
	url := fmt.Sprintf("%s/api/v2/networks/%s/tokens/%s", c.baseURL, network, address)

	var resp tokenInfoResponse
	if err := getJSON(ctx, c.client, url, &resp); err != nil {
		return nil, fmt.Errorf("token price %s: %w", address, err)
	}

	p := resp.Data.Attributes.PriceUSD
	if p == nil || *p == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*p, 64)
	if err != nil {
		return nil, fmt.Errorf("token price %s: bad price_usd %q", address, *p)
	}
	return &f, nil
}
