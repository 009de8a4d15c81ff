package eventmodels

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebError(t *testing.T) {
	t.Run("wrapped errors keep their kind", func(t *testing.T) {
		cause := errors.New("Too many requests")
		err := fmt.Errorf("FetchStockQuote: %w", NewRateLimitedError(cause))

		assert.ErrorIs(t, err, ErrRateLimited)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, ErrNotFound)

		var webErr *WebError
		require.ErrorAs(t, err, &webErr)
		assert.Equal(t, http.StatusTooManyRequests, webErr.StatusCode)
		assert.Equal(t, RateLimitedMessage, webErr.Message)
	})

	t.Run("upstream message hides the cause", func(t *testing.T) {
		err := NewUpstreamError(errors.New("boom"))

		assert.Equal(t, UpstreamErrorMessage, err.Message)
		assert.Equal(t, "Internal Server Error: boom", err.Error())
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		err := NewSymbolNotFoundError("ZZZZINVALID", nil)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, "Could not fetch price data for ZZZZINVALID. Please verify the symbol is correct.", err.Error())
	})

	t.Run("validation", func(t *testing.T) {
		err := NewValidationError(errors.New("n_expirations must be at least 1"))

		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
	})
}

func TestToOptionChain(t *testing.T) {
	last := 1.5
	dtos := []TradierOptionDTO{
		{Symbol: "SPY250404C00500000", Strike: 500, Last: &last, OptionType: "call"},
		{Symbol: "SPY250404P00500000", Strike: 500, OptionType: "put"},
	}

	chain, err := ToOptionChain("2025-04-04", dtos)
	require.NoError(t, err)

	require.Len(t, chain.Calls, 1)
	require.Len(t, chain.Puts, 1)
	assert.Equal(t, 1.5, *chain.Calls[0].LastPrice)
	assert.Nil(t, chain.Puts[0].LastPrice)

	_, err = ToOptionChain("2025-04-04", []TradierOptionDTO{{OptionType: "straddle"}})
	assert.Error(t, err)
}
