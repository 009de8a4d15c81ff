package eventservices

import (
	"context"
	"fmt"

	"github.com/jiaming2012/options-viz/src/eventmodels"
	"github.com/jiaming2012/options-viz/src/utils"
)

type OptionsChainService struct {
	Provider     MarketDataProvider
	RetryPolicy  utils.RetryPolicy
	StrikeWindow StrikeWindow
}

func NewOptionsChainService(provider MarketDataProvider, retryPolicy utils.RetryPolicy, window StrikeWindow) *OptionsChainService {
	return &OptionsChainService{
		Provider:     provider,
		RetryPolicy:  retryPolicy,
		StrikeWindow: window,
	}
}

// FetchOptionsChain resolves symbol and assembles its options chain.
func (s *OptionsChainService) FetchOptionsChain(ctx context.Context, symbol eventmodels.StockSymbol, nExpirations int) (*eventmodels.OptionsChainResponse, error) {
	ticker, err := ResolveTicker(ctx, s.Provider, symbol, s.RetryPolicy)
	if err != nil {
		return nil, err
	}

	response, err := BuildOptionsChain(ctx, ticker, nExpirations, s.StrikeWindow)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionsChain: %s: %w", symbol, err)
	}

	return response, nil
}
