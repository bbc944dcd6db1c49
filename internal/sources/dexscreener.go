package sources

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// DefaultPaymentBaseURL is the DexScreener API base URL.
const DefaultPaymentBaseURL = "https://api.dexscreener.com"

// Payment status sentinels. Any other value returned by PaymentStatus is the
// raw status string of the most recent paid order.
const (
	PaymentApproved = "approved"
	PaymentUnknown  = "unknown"
	PaymentError    = "error"
)

// PaymentClient resolves a token's listing-payment status from DexScreener
// orders. Lookups carry an explicit 5 second timeout.
type PaymentClient struct {
	baseURL string
	client  *http.Client
}

// NewPaymentClient creates a payment-status client.
func NewPaymentClient(opts ...Option) *PaymentClient {
	o := options{
		baseURL: DefaultPaymentBaseURL,
		client:  &http.Client{Timeout: DefaultPaymentTimeout},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &PaymentClient{baseURL: o.baseURL, client: o.client}
}

// paymentOrder is the wire shape of one DexScreener order entry.
// PaymentTimestamp is typed loosely; only numeric values participate in
// latest-order selection.
type paymentOrder struct {
	Type             string `json:"type"`
	Status           string `json:"status"`
	PaymentTimestamp any    `json:"paymentTimestamp"`
}

// PaymentStatus returns the resolved payment status for a token. Transport
// and parse failures map to "error"; they never abort the caller.
func (c *PaymentClient) PaymentStatus(ctx context.Context, chain, address string) string {
	url := fmt.Sprintf("%s/orders/v1/%s/%s", c.baseURL, chain, address)

	var orders []paymentOrder
	if err := getJSON(ctx, c.client, url, &orders); err != nil {
		log.Debug().Err(err).Str("address", address).Msg("payment status lookup failed")
		return PaymentError
	}
	return resolvePaymentStatus(orders)
}

// resolvePaymentStatus applies the tiered resolution policy:
//  1. empty order list -> "unknown"
//  2. any approved tokenProfile order -> "approved"
//  3. otherwise the status of the order with the highest numeric
//     paymentTimestamp, defaulting to "unknown" when that status is empty
//  4. no order carries a numeric timestamp -> "unknown"
func resolvePaymentStatus(orders []paymentOrder) string {
	if len(orders) == 0 {
		return PaymentUnknown
	}

	for _, o := range orders {
		if o.Type == "tokenProfile" && o.Status == PaymentApproved {
			return PaymentApproved
		}
	}

	latest := -1
	var latestTS float64
	for i, o := range orders {
		ts, ok := o.PaymentTimestamp.(float64)
		if !ok {
			continue
		}
		if latest == -1 || ts > latestTS {
			latest, latestTS = i, ts
		}
	}
	if latest == -1 || orders[latest].Status == "" {
		return PaymentUnknown
	}
	return orders[latest].Status
}
