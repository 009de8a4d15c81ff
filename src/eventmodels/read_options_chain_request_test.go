package eventmodels

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOptionsRequest(symbol, query string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/options/"+symbol+query, nil)
	return mux.SetURLVars(r, map[string]string{"symbol": symbol})
}

func TestReadOptionsChainRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r := newOptionsRequest("nvda", "")
		req := &ReadOptionsChainRequest{}

		require.NoError(t, req.ParseHTTPRequest(r))
		require.NoError(t, req.Validate(r))

		assert.Equal(t, StockSymbol("NVDA"), req.Symbol)
		assert.Nil(t, req.NExpirations)
		assert.Equal(t, 6, req.Expirations(6))
	})

	t.Run("n_expirations", func(t *testing.T) {
		r := newOptionsRequest("SPY", "?n_expirations=2&unused=1")
		req := &ReadOptionsChainRequest{}

		require.NoError(t, req.ParseHTTPRequest(r))
		require.NoError(t, req.Validate(r))

		assert.Equal(t, 2, req.Expirations(6))
	})

	t.Run("non integer", func(t *testing.T) {
		r := newOptionsRequest("SPY", "?n_expirations=two")
		req := &ReadOptionsChainRequest{}

		assert.Error(t, req.ParseHTTPRequest(r))
	})

	t.Run("zero", func(t *testing.T) {
		r := newOptionsRequest("SPY", "?n_expirations=0")
		req := &ReadOptionsChainRequest{}

		require.NoError(t, req.ParseHTTPRequest(r))
		require.NoError(t, req.Validate(r))
		assert.Equal(t, 0, req.Expirations(6))
	})

	t.Run("negative", func(t *testing.T) {
		for _, query := range []string{"?n_expirations=-1", "?n_expirations=-100"} {
			r := newOptionsRequest("SPY", query)
			req := &ReadOptionsChainRequest{}

			require.NoError(t, req.ParseHTTPRequest(r))
			assert.Error(t, req.Validate(r), query)
		}
	})
}

func TestStockSymbolValidate(t *testing.T) {
	for _, symbol := range []StockSymbol{"NVDA", "BRK.B", "^SPX", "BF-B", "ZZZZINVALID"} {
		assert.NoError(t, symbol.Validate(), symbol)
	}

	for _, symbol := range []StockSymbol{"", "WAYTOOLONGSYMBOL", "AB CD", "NV$A"} {
		assert.Error(t, symbol.Validate(), symbol)
	}

	assert.Equal(t, StockSymbol("AAPL"), NewStockSymbol("  aapl "))
}
