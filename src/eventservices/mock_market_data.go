package eventservices

import (
	"context"
	"fmt"
	"sync"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

// MockMarketDataProvider is an in memory MarketDataProvider. QuoteErrs are
// returned by successive quote calls, after which QuoteErr, if set, is
// returned by every remaining call.
type MockMarketDataProvider struct {
	Quotes         map[eventmodels.StockSymbol]*eventmodels.StockQuote
	Expirations    map[eventmodels.StockSymbol][]string
	Chains         map[eventmodels.StockSymbol]map[string]*eventmodels.OptionChain
	QuoteErrs      []error
	QuoteErr       error
	ExpirationsErr error
	ChainErrs      map[string]error

	mu               sync.Mutex
	quoteCalls       int
	expirationsCalls int
	chainCalls       int
}

func NewMockMarketDataProvider() *MockMarketDataProvider {
	return &MockMarketDataProvider{
		Quotes:      make(map[eventmodels.StockSymbol]*eventmodels.StockQuote),
		Expirations: make(map[eventmodels.StockSymbol][]string),
		Chains:      make(map[eventmodels.StockSymbol]map[string]*eventmodels.OptionChain),
		ChainErrs:   make(map[string]error),
	}
}

func (m *MockMarketDataProvider) SetQuote(symbol eventmodels.StockSymbol, lastPrice float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Quotes[symbol] = &eventmodels.StockQuote{
		Symbol:    symbol,
		LastPrice: &lastPrice,
	}
}

// AddOptionChain registers chain and appends its expiration to the symbol's
// expiration list.
func (m *MockMarketDataProvider) AddOptionChain(symbol eventmodels.StockSymbol, chain *eventmodels.OptionChain) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, found := m.Chains[symbol]; !found {
		m.Chains[symbol] = make(map[string]*eventmodels.OptionChain)
	}

	m.Chains[symbol][chain.Expiration] = chain
	m.Expirations[symbol] = append(m.Expirations[symbol], chain.Expiration)
}

func (m *MockMarketDataProvider) FetchStockQuote(ctx context.Context, symbol eventmodels.StockSymbol) (*eventmodels.StockQuote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := m.quoteCalls
	m.quoteCalls++

	if call < len(m.QuoteErrs) && m.QuoteErrs[call] != nil {
		return nil, m.QuoteErrs[call]
	}

	if m.QuoteErr != nil {
		return nil, m.QuoteErr
	}

	return m.Quotes[symbol], nil
}

func (m *MockMarketDataProvider) FetchExpirations(ctx context.Context, symbol eventmodels.StockSymbol) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.expirationsCalls++

	if m.ExpirationsErr != nil {
		return nil, m.ExpirationsErr
	}

	return append([]string{}, m.Expirations[symbol]...), nil
}

func (m *MockMarketDataProvider) FetchOptionChain(ctx context.Context, symbol eventmodels.StockSymbol, expiration string) (*eventmodels.OptionChain, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.chainCalls++

	if err, found := m.ChainErrs[expiration]; found {
		return nil, err
	}

	chain, found := m.Chains[symbol][expiration]
	if !found {
		return nil, fmt.Errorf("MockMarketDataProvider: no chain for %s %s", symbol, expiration)
	}

	return chain, nil
}

func (m *MockMarketDataProvider) QuoteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.quoteCalls
}

func (m *MockMarketDataProvider) ExpirationsCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.expirationsCalls
}

func (m *MockMarketDataProvider) ChainCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.chainCalls
}
