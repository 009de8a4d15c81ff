package eventmodels

type StockQuote struct {
	Symbol    StockSymbol
	LastPrice *float64
}
