package eventservices

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/options-viz/src/eventmodels"
	"github.com/jiaming2012/options-viz/src/utils"
)

func TestResolveTicker(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the spot price", func(t *testing.T) {
		provider := NewMockMarketDataProvider()
		provider.SetQuote("NVDA", 100)

		ticker, err := ResolveTicker(ctx, provider, "NVDA", fastRetryPolicy())
		require.NoError(t, err)

		assert.Equal(t, eventmodels.StockSymbol("NVDA"), ticker.Symbol)
		assert.Equal(t, 100.0, ticker.SpotPrice)
		assert.Equal(t, 1, provider.QuoteCalls())
	})

	t.Run("unknown symbol is not found", func(t *testing.T) {
		provider := NewMockMarketDataProvider()

		_, err := ResolveTicker(ctx, provider, "ZZZZINVALID", fastRetryPolicy())
		require.Error(t, err)
		assert.ErrorIs(t, err, eventmodels.ErrNotFound)

		var webErr *eventmodels.WebError
		require.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusNotFound, webErr.StatusCode)
		assert.Equal(t, "Could not fetch price data for ZZZZINVALID. Please verify the symbol is correct.", webErr.Message)

		// not found is retried like any other failure
		assert.Equal(t, 4, provider.QuoteCalls())
	})

	t.Run("a quote without a last price is not found", func(t *testing.T) {
		provider := NewMockMarketDataProvider()
		provider.Quotes["XYZ"] = &eventmodels.StockQuote{Symbol: "XYZ"}

		_, err := ResolveTicker(ctx, provider, "XYZ", utils.NewRetryPolicy(0, time.Millisecond, 0))
		assert.ErrorIs(t, err, eventmodels.ErrNotFound)
		assert.Equal(t, 1, provider.QuoteCalls())
	})

	t.Run("throttling on every attempt is rate limited", func(t *testing.T) {
		provider := NewMockMarketDataProvider()
		provider.SetQuote("NVDA", 100)
		provider.QuoteErr = errors.New("Too many requests. Rate limited. Try after a while.")

		_, err := ResolveTicker(ctx, provider, "NVDA", fastRetryPolicy())
		require.Error(t, err)
		assert.ErrorIs(t, err, eventmodels.ErrRateLimited)

		var webErr *eventmodels.WebError
		require.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusTooManyRequests, webErr.StatusCode)
		assert.Equal(t, eventmodels.RateLimitedMessage, webErr.Message)

		assert.Equal(t, 4, provider.QuoteCalls())
	})

	t.Run("succeeds after transient failures", func(t *testing.T) {
		provider := NewMockMarketDataProvider()
		provider.SetQuote("NVDA", 101.5)
		provider.QuoteErrs = []error{
			errors.New("connection refused"),
			errors.New("429 Too Many Requests"),
		}

		ticker, err := ResolveTicker(ctx, provider, "NVDA", fastRetryPolicy())
		require.NoError(t, err)

		assert.Equal(t, 101.5, ticker.SpotPrice)
		assert.Equal(t, 3, provider.QuoteCalls())
	})

	t.Run("other failures surface as upstream errors", func(t *testing.T) {
		provider := NewMockMarketDataProvider()
		provider.QuoteErr = errors.New("connection refused")

		_, err := ResolveTicker(ctx, provider, "NVDA", fastRetryPolicy())
		assert.ErrorIs(t, err, eventmodels.ErrUpstream)

		var webErr *eventmodels.WebError
		require.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusInternalServerError, webErr.StatusCode)
		assert.Equal(t, eventmodels.UpstreamErrorMessage, webErr.Message)
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestClassifyUpstreamError(t *testing.T) {
	for _, msg := range []string{
		"Too many requests",
		"you have hit the rate limit",
		"Quota Violation",
		"You've exceeded the maximum requests per minute",
	} {
		assert.ErrorIs(t, classifyUpstreamError(errors.New(msg)), eventmodels.ErrRateLimited, msg)
	}

	notFound := eventmodels.NewSymbolNotFoundError("ABC", nil)
	assert.Same(t, notFound, classifyUpstreamError(notFound))

	assert.Nil(t, classifyUpstreamError(nil))
}
