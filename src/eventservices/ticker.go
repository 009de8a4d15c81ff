package eventservices

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jiaming2012/options-viz/src/eventmodels"
	"github.com/jiaming2012/options-viz/src/utils"
)

// Ticker is a request scoped handle on an upstream symbol whose spot price
// has been confirmed.
type Ticker struct {
	Symbol    eventmodels.StockSymbol
	SpotPrice float64
	provider  MarketDataProvider
}

func NewTicker(symbol eventmodels.StockSymbol, spotPrice float64, provider MarketDataProvider) *Ticker {
	return &Ticker{
		Symbol:    symbol,
		SpotPrice: spotPrice,
		provider:  provider,
	}
}

func (t *Ticker) Expirations(ctx context.Context) ([]string, error) {
	expirations, err := t.provider.FetchExpirations(ctx, t.Symbol)
	if err != nil {
		return nil, classifyUpstreamError(fmt.Errorf("Ticker: failed to fetch expirations for %s: %w", t.Symbol, err))
	}

	return expirations, nil
}

func (t *Ticker) OptionChain(ctx context.Context, expiration string) (*eventmodels.OptionChain, error) {
	chain, err := t.provider.FetchOptionChain(ctx, t.Symbol, expiration)
	if err != nil {
		return nil, classifyUpstreamError(fmt.Errorf("Ticker: failed to fetch %s option chain for %s: %w", expiration, t.Symbol, err))
	}

	return chain, nil
}

// ResolveTicker looks the symbol up upstream, retrying every failure per
// policy. The error from the final attempt is returned unchanged.
func ResolveTicker(ctx context.Context, provider MarketDataProvider, symbol eventmodels.StockSymbol, policy utils.RetryPolicy) (*Ticker, error) {
	tracer := otel.Tracer("ResolveTicker")
	ctx, span := tracer.Start(ctx, "ResolveTicker")
	defer span.End()

	span.SetAttributes(attribute.String("symbol", symbol.String()))

	return utils.Retry(ctx, policy, func(ctx context.Context) (*Ticker, error) {
		return resolveTicker(ctx, provider, symbol)
	})
}

func resolveTicker(ctx context.Context, provider MarketDataProvider, symbol eventmodels.StockSymbol) (*Ticker, error) {
	quote, err := provider.FetchStockQuote(ctx, symbol)
	if err != nil {
		return nil, classifyUpstreamError(err)
	}

	if quote == nil || quote.LastPrice == nil {
		return nil, eventmodels.NewSymbolNotFoundError(symbol, nil)
	}

	log.WithContext(ctx).Debugf("resolved %s at %.2f", symbol, *quote.LastPrice)

	return NewTicker(symbol, *quote.LastPrice, provider), nil
}
