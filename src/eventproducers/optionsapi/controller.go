package optionsapi

import (
	"context"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

type OptionsChainFetcher interface {
	FetchOptionsChain(ctx context.Context, symbol eventmodels.StockSymbol, nExpirations int) (*eventmodels.OptionsChainResponse, error)
}
