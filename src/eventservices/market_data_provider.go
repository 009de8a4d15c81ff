package eventservices

import (
	"context"
	"fmt"
	"strings"

	"github.com/jiaming2012/options-viz/src/eventmodels"
	"github.com/jiaming2012/options-viz/src/utils"
)

// MarketDataProvider is the upstream source of quotes and option chains.
// Implementations classify throttling as eventmodels.ErrRateLimited.
type MarketDataProvider interface {
	FetchStockQuote(ctx context.Context, symbol eventmodels.StockSymbol) (*eventmodels.StockQuote, error)
	FetchExpirations(ctx context.Context, symbol eventmodels.StockSymbol) ([]string, error)
	FetchOptionChain(ctx context.Context, symbol eventmodels.StockSymbol, expiration string) (*eventmodels.OptionChain, error)
}

// NewMarketDataProvider builds the provider named by config. Credentials are
// read from TRADIER_BEARER_TOKEN or POLYGON_API_KEY.
func NewMarketDataProvider(config *eventmodels.ServerConfigYAML) (MarketDataProvider, error) {
	switch strings.ToLower(config.Upstream.Provider) {
	case eventmodels.UpstreamProviderTradier:
		token, err := utils.GetEnv("TRADIER_BEARER_TOKEN")
		if err != nil {
			return nil, fmt.Errorf("NewMarketDataProvider: %w", err)
		}

		return NewTradierMarketData(config.Upstream.Tradier.BaseURL, token, config.Upstream.Timeout), nil
	case eventmodels.UpstreamProviderPolygon:
		apiKey, err := utils.GetEnv("POLYGON_API_KEY")
		if err != nil {
			return nil, fmt.Errorf("NewMarketDataProvider: %w", err)
		}

		return NewPolygonMarketData(apiKey, config.Upstream.Timeout), nil
	default:
		return nil, fmt.Errorf("NewMarketDataProvider: unknown provider %q", config.Upstream.Provider)
	}
}

func NewOptionsChainServiceFromConfig(config *eventmodels.ServerConfigYAML, provider MarketDataProvider) *OptionsChainService {
	policy := utils.NewRetryPolicy(config.Retry.Retries, config.Retry.BaseDelay, config.Retry.MaxJitter)
	window := NewStrikeWindow(config.StrikeWindow.Lower, config.StrikeWindow.Upper)

	return NewOptionsChainService(provider, policy, window)
}
