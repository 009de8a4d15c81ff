package eventmodels

import (
	"encoding/json"
	"fmt"
	"strings"
)

type StockSymbol string

func (s StockSymbol) String() string {
	return strings.ToUpper(string(s))
}

func (s StockSymbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Validate accepts tickers such as "NVDA", "BRK.B" or "^SPX".
func (s StockSymbol) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("symbol is required")
	}

	if len(s) > 12 {
		return fmt.Errorf("symbol is too long: %d", len(s))
	}

	for _, c := range string(s) {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '^') {
			return fmt.Errorf("invalid character in symbol: %c (%s)", c, s)
		}
	}

	return nil
}

func NewStockSymbol(s string) StockSymbol {
	return StockSymbol(strings.ToUpper(strings.TrimSpace(s)))
}
