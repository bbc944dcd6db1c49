package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPriceUSD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/networks/solana/tokens/TokenAAA", r.URL.Path)
		w.Write([]byte(`{"data":{"attributes":{"price_usd":"0.004217"}}}`))
	}))
	defer srv.Close()

	client := NewPriceClient(WithBaseURL(srv.URL))
	price, err := client.TokenPriceUSD(context.Background(), "solana", "TokenAAA")
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, 0.004217, *price)
}

func TestTokenPriceUSD_NullPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"attributes":{"price_usd":null}}}`))
	}))
	defer srv.Close()

	client := NewPriceClient(WithBaseURL(srv.URL))
	price, err := client.TokenPriceUSD(context.Background(), "solana", "TokenAAA")
	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestTokenPriceUSD_BadPriceString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"attributes":{"price_usd":"not-a-price"}}}`))
	}))
	defer srv.Close()

	client := NewPriceClient(WithBaseURL(srv.URL))
	_, err := client.TokenPriceUSD(context.Background(), "solana", "TokenAAA")
	require.Error(t, err)
}

func TestTokenPriceUSD_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewPriceClient(WithBaseURL(srv.URL))
	_, err := client.TokenPriceUSD(context.Background(), "solana", "TokenMissing")
	require.Error(t, err)
}
