package eventmodels

type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

// OptionQuote is one upstream contract row for a single side of a chain.
// LastPrice is nil when the contract has never traded.
type OptionQuote struct {
	Strike    float64
	LastPrice *float64
}

func NewOptionQuote(strike float64, lastPrice *float64) OptionQuote {
	return OptionQuote{
		Strike:    strike,
		LastPrice: lastPrice,
	}
}
