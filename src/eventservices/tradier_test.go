package eventservices

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

func newTradierTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		body, found := routes[r.URL.Path]
		if !found {
			http.NotFound(w, r)
			return
		}

		if body == "429" {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte("slow down"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))

	t.Cleanup(server.Close)

	return server
}

func TestTradierMarketData(t *testing.T) {
	ctx := context.Background()

	t.Run("quote", func(t *testing.T) {
		server := newTradierTestServer(t, map[string]string{
			tradierQuotesPath: `{"quotes":{"quote":{"symbol":"NVDA","description":"NVIDIA Corp","type":"stock","last":100.5,"bid":100.4,"ask":100.6}}}`,
		})

		tradier := NewTradierMarketData(server.URL, "test-token", time.Second)

		quote, err := tradier.FetchStockQuote(ctx, "NVDA")
		require.NoError(t, err)
		require.NotNil(t, quote.LastPrice)
		assert.Equal(t, 100.5, *quote.LastPrice)
	})

	t.Run("unmatched symbol is not found", func(t *testing.T) {
		server := newTradierTestServer(t, map[string]string{
			tradierQuotesPath: `{"quotes":{"unmatched_symbols":{"symbol":"ZZZZINVALID"}}}`,
		})

		tradier := NewTradierMarketData(server.URL, "test-token", time.Second)

		_, err := tradier.FetchStockQuote(ctx, "ZZZZINVALID")
		assert.ErrorIs(t, err, eventmodels.ErrNotFound)
	})

	t.Run("429 is rate limited", func(t *testing.T) {
		server := newTradierTestServer(t, map[string]string{
			tradierQuotesPath: "429",
		})

		tradier := NewTradierMarketData(server.URL, "test-token", time.Second)

		_, err := tradier.FetchStockQuote(ctx, "NVDA")
		assert.ErrorIs(t, err, eventmodels.ErrRateLimited)
	})

	t.Run("expirations", func(t *testing.T) {
		server := newTradierTestServer(t, map[string]string{
			tradierExpirationsPath: `{"expirations":{"date":["2025-04-04","2025-04-11"]}}`,
		})

		tradier := NewTradierMarketData(server.URL+"/", "test-token", time.Second)

		expirations, err := tradier.FetchExpirations(ctx, "NVDA")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-04-04", "2025-04-11"}, expirations)
	})

	t.Run("no expirations", func(t *testing.T) {
		server := newTradierTestServer(t, map[string]string{
			tradierExpirationsPath: `{"expirations":null}`,
		})

		tradier := NewTradierMarketData(server.URL, "test-token", time.Second)

		expirations, err := tradier.FetchExpirations(ctx, "NVDA")
		require.NoError(t, err)
		assert.Empty(t, expirations)
	})

	t.Run("option chain", func(t *testing.T) {
		server := newTradierTestServer(t, map[string]string{
			tradierChainsPath: `{"options":{"option":[` +
				`{"symbol":"NVDA250404C00090000","underlying":"NVDA","strike":90,"last":12.0,"option_type":"call","expiration_date":"2025-04-04"},` +
				`{"symbol":"NVDA250404P00090000","underlying":"NVDA","strike":90,"last":1.0,"option_type":"put","expiration_date":"2025-04-04"},` +
				`{"symbol":"NVDA250404P00095000","underlying":"NVDA","strike":95,"last":null,"option_type":"put","expiration_date":"2025-04-04"}]}}`,
		})

		tradier := NewTradierMarketData(server.URL, "test-token", time.Second)

		chain, err := tradier.FetchOptionChain(ctx, "NVDA", "2025-04-04")
		require.NoError(t, err)

		assert.Equal(t, "2025-04-04", chain.Expiration)
		require.Len(t, chain.Calls, 1)
		require.Len(t, chain.Puts, 2)
		assert.Equal(t, 12.0, *chain.Calls[0].LastPrice)
		assert.Nil(t, chain.Puts[1].LastPrice)
	})

	t.Run("server error", func(t *testing.T) {
		server := newTradierTestServer(t, map[string]string{})

		tradier := NewTradierMarketData(server.URL, "test-token", time.Second)

		_, err := tradier.FetchOptionChain(ctx, "NVDA", "2025-04-04")
		require.Error(t, err)
		assert.NotErrorIs(t, err, eventmodels.ErrRateLimited)
	})
}
