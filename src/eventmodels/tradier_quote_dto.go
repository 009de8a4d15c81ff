package eventmodels

type TradierQuoteDTO struct {
	Symbol      string   `json:"symbol"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Last        *float64 `json:"last"`
	Bid         *float64 `json:"bid"`
	Ask         *float64 `json:"ask"`
}

func (dto *TradierQuoteDTO) ToModel() *StockQuote {
	return &StockQuote{
		Symbol:    NewStockSymbol(dto.Symbol),
		LastPrice: dto.Last,
	}
}
