package eventmodels

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

type ReadOptionsChainRequest struct {
	Symbol       StockSymbol `schema:"-"`
	NExpirations *int        `schema:"n_expirations"`
}

func (req *ReadOptionsChainRequest) ParseHTTPRequest(r *http.Request) error {
	vars := mux.Vars(r)
	req.Symbol = NewStockSymbol(vars["symbol"])

	if err := queryDecoder.Decode(req, r.URL.Query()); err != nil {
		return fmt.Errorf("ReadOptionsChainRequest: ParseHTTPRequest: n_expirations must be an integer: %w", err)
	}

	return nil
}

func (req *ReadOptionsChainRequest) Validate(r *http.Request) error {
	if err := req.Symbol.Validate(); err != nil {
		return fmt.Errorf("ReadOptionsChainRequest: invalid symbol: %w", err)
	}

	if req.NExpirations != nil && *req.NExpirations < 0 {
		return fmt.Errorf("ReadOptionsChainRequest: n_expirations must not be negative, got %d", *req.NExpirations)
	}

	return nil
}

// Expirations returns the requested expiration count, or defaultValue when
// the query parameter was omitted.
func (req *ReadOptionsChainRequest) Expirations(defaultValue int) int {
	if req.NExpirations == nil {
		return defaultValue
	}

	return *req.NExpirations
}
