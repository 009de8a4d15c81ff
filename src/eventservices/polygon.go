package eventservices

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

const (
	polygonDateLayout = "2006-01-02"

	// polygonSnapshotPageSize is the largest page the snapshot endpoint serves.
	polygonSnapshotPageSize = 250
)

// PolygonMarketData serves spot prices from the previous daily close and
// option chains from the options chain snapshot.
type PolygonMarketData struct {
	Client *polygon.Client
}

// NewPolygonMarketData disables client-go's own retries since callers wrap
// every fetch in their own retry loop. The client sets a 10s timeout of its
// own, so the configured timeout is applied afterwards.
func NewPolygonMarketData(apiKey string, timeout time.Duration) *PolygonMarketData {
	client := polygon.NewWithClient(apiKey, &http.Client{})
	client.HTTP.SetRetryCount(0)
	client.HTTP.SetTimeout(timeout)

	return &PolygonMarketData{
		Client: client,
	}
}

// classifyPolygonError maps a 429 from client-go onto RateLimited.
func classifyPolygonError(err error) error {
	var errRes *models.ErrorResponse
	if errors.As(err, &errRes) && errRes.StatusCode == http.StatusTooManyRequests {
		return eventmodels.NewRateLimitedError(err)
	}

	return err
}

func (p *PolygonMarketData) FetchStockQuote(ctx context.Context, symbol eventmodels.StockSymbol) (*eventmodels.StockQuote, error) {
	params := &models.GetPreviousCloseAggParams{
		Ticker: symbol.String(),
	}

	res, err := p.Client.GetPreviousCloseAgg(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("FetchStockQuote: failed to fetch previous close: %w", classifyPolygonError(err))
	}

	if len(res.Results) == 0 {
		return nil, eventmodels.NewSymbolNotFoundError(symbol, nil)
	}

	last := res.Results[0].Close

	return &eventmodels.StockQuote{
		Symbol:    symbol,
		LastPrice: &last,
	}, nil
}

func (p *PolygonMarketData) snapshot(ctx context.Context, params *models.ListOptionsChainParams) ([]models.OptionContractSnapshot, error) {
	limit := polygonSnapshotPageSize
	params.Limit = &limit

	var contracts []models.OptionContractSnapshot

	iter := p.Client.ListOptionsChainSnapshot(ctx, params)
	for iter.Next() {
		contracts = append(contracts, iter.Item())
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("snapshot: failed to list options chain: %w", classifyPolygonError(err))
	}

	return contracts, nil
}

func (p *PolygonMarketData) FetchExpirations(ctx context.Context, symbol eventmodels.StockSymbol) ([]string, error) {
	contracts, err := p.snapshot(ctx, &models.ListOptionsChainParams{
		UnderlyingAsset: symbol.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("FetchExpirations: %w", err)
	}

	seen := make(map[string]bool)
	expirations := []string{}
	for _, c := range contracts {
		expiry := time.Time(c.Details.ExpirationDate).Format(polygonDateLayout)
		if !seen[expiry] {
			seen[expiry] = true
			expirations = append(expirations, expiry)
		}
	}

	sort.Strings(expirations)

	return expirations, nil
}

func (p *PolygonMarketData) FetchOptionChain(ctx context.Context, symbol eventmodels.StockSymbol, expiration string) (*eventmodels.OptionChain, error) {
	expiry, err := time.Parse(polygonDateLayout, expiration)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionChain: invalid expiration %q: %w", expiration, err)
	}

	expiryDate := models.Date(expiry)

	contracts, err := p.snapshot(ctx, &models.ListOptionsChainParams{
		UnderlyingAsset:  symbol.String(),
		ExpirationDateEQ: &expiryDate,
	})
	if err != nil {
		return nil, fmt.Errorf("FetchOptionChain: %w", err)
	}

	chain := &eventmodels.OptionChain{
		Expiration: expiration,
		Calls:      []eventmodels.OptionQuote{},
		Puts:       []eventmodels.OptionQuote{},
	}

	for _, c := range contracts {
		if time.Time(c.Details.ExpirationDate).Format(polygonDateLayout) != expiration {
			continue
		}

		var lastPrice *float64
		if c.Day.Close > 0 {
			dayClose := c.Day.Close
			lastPrice = &dayClose
		}

		quote := eventmodels.NewOptionQuote(c.Details.StrikePrice, lastPrice)

		switch eventmodels.OptionType(c.Details.ContractType) {
		case eventmodels.OptionTypeCall:
			chain.Calls = append(chain.Calls, quote)
		case eventmodels.OptionTypePut:
			chain.Puts = append(chain.Puts, quote)
		}
	}

	return chain, nil
}
