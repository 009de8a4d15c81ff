package eventmodels

import "fmt"

type TradierOptionDTO struct {
	Symbol         string   `json:"symbol"`
	Underlying     string   `json:"underlying"`
	Strike         float64  `json:"strike"`
	Last           *float64 `json:"last"`
	Bid            *float64 `json:"bid"`
	Ask            *float64 `json:"ask"`
	OptionType     string   `json:"option_type"`
	ExpirationDate string   `json:"expiration_date"`
}

// ToOptionChain splits the flat Tradier option list into calls and puts,
// preserving upstream order within each side.
func ToOptionChain(expiration string, dtos []TradierOptionDTO) (*OptionChain, error) {
	chain := &OptionChain{
		Expiration: expiration,
		Calls:      []OptionQuote{},
		Puts:       []OptionQuote{},
	}

	for _, dto := range dtos {
		quote := NewOptionQuote(dto.Strike, dto.Last)

		switch OptionType(dto.OptionType) {
		case OptionTypeCall:
			chain.Calls = append(chain.Calls, quote)
		case OptionTypePut:
			chain.Puts = append(chain.Puts, quote)
		default:
			return nil, fmt.Errorf("ToOptionChain: invalid option type %q for %s", dto.OptionType, dto.Symbol)
		}
	}

	return chain, nil
}
