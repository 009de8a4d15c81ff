package eventservices

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/options-viz/src/eventmodels"
	"github.com/jiaming2012/options-viz/src/utils"
)

const (
	tradierQuotesPath      = "/v1/markets/quotes"
	tradierExpirationsPath = "/v1/markets/options/expirations"
	tradierChainsPath      = "/v1/markets/options/chains"
)

// TradierMarketData reads quotes and option chains from the Tradier markets API.
type TradierMarketData struct {
	BaseURL     string
	BearerToken string
	Client      *http.Client
}

func NewTradierMarketData(baseURL, bearerToken string, timeout time.Duration) *TradierMarketData {
	return &TradierMarketData{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		BearerToken: bearerToken,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (t *TradierMarketData) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	headers := map[string]string{
		"Accept":        "application/json",
		"Authorization": fmt.Sprintf("Bearer %s", t.BearerToken),
	}

	body, err := utils.Get(ctx, t.Client, t.BaseURL+path, query, headers)
	if err != nil {
		var statusErr *utils.HTTPStatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusTooManyRequests {
			return nil, eventmodels.NewRateLimitedError(err)
		}

		return nil, err
	}

	return body, nil
}

func (t *TradierMarketData) FetchStockQuote(ctx context.Context, symbol eventmodels.StockSymbol) (*eventmodels.StockQuote, error) {
	query := url.Values{}
	query.Add("symbols", symbol.String())
	query.Add("greeks", "false")

	body, err := t.get(ctx, tradierQuotesPath, query)
	if err != nil {
		return nil, fmt.Errorf("FetchStockQuote: failed to fetch quote: %w", err)
	}

	if utils.HasTradierField(body, "unmatched_symbols") {
		return nil, eventmodels.NewSymbolNotFoundError(symbol, nil)
	}

	dtos, err := utils.ParseTradierResponse[eventmodels.TradierQuoteDTO](body, "quote")
	if err != nil {
		return nil, fmt.Errorf("FetchStockQuote: failed to parse response: %w", err)
	}

	for _, dto := range dtos {
		if strings.EqualFold(dto.Symbol, symbol.String()) {
			return dto.ToModel(), nil
		}
	}

	return nil, eventmodels.NewSymbolNotFoundError(symbol, nil)
}

func (t *TradierMarketData) FetchExpirations(ctx context.Context, symbol eventmodels.StockSymbol) ([]string, error) {
	query := url.Values{}
	query.Add("symbol", symbol.String())
	query.Add("includeAllRoots", "true")

	body, err := t.get(ctx, tradierExpirationsPath, query)
	if err != nil {
		return nil, fmt.Errorf("FetchExpirations: failed to fetch expirations: %w", err)
	}

	expirations, err := utils.ParseTradierResponse[string](body, "date")
	if err != nil {
		return nil, fmt.Errorf("FetchExpirations: failed to parse response: %w", err)
	}

	return expirations, nil
}

func (t *TradierMarketData) FetchOptionChain(ctx context.Context, symbol eventmodels.StockSymbol, expiration string) (*eventmodels.OptionChain, error) {
	query := url.Values{}
	query.Add("symbol", symbol.String())
	query.Add("expiration", expiration)
	query.Add("greeks", "false")

	body, err := t.get(ctx, tradierChainsPath, query)
	if err != nil {
		return nil, fmt.Errorf("FetchOptionChain: failed to fetch %s chain: %w", expiration, err)
	}

	dtos, err := utils.ParseTradierResponse[eventmodels.TradierOptionDTO](body, "option")
	if err != nil {
		return nil, fmt.Errorf("FetchOptionChain: failed to parse response: %w", err)
	}

	log.WithContext(ctx).Debugf("FetchOptionChain: %s %s: %d contracts", symbol, expiration, len(dtos))

	return eventmodels.ToOptionChain(expiration, dtos)
}
