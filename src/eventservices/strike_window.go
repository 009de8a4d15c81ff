package eventservices

import (
	"github.com/shopspring/decimal"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

// StrikeWindow expresses the strike range kept around spot as multipliers,
// e.g. 0.8 and 1.2 for +/-20%.
type StrikeWindow struct {
	Lower decimal.Decimal
	Upper decimal.Decimal
}

func NewStrikeWindow(lower, upper float64) StrikeWindow {
	return StrikeWindow{
		Lower: decimal.NewFromFloat(lower),
		Upper: decimal.NewFromFloat(upper),
	}
}

func DefaultStrikeWindow() StrikeWindow {
	return NewStrikeWindow(0.8, 1.2)
}

type StrikeBounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func (w StrikeWindow) Bounds(spotPrice float64) StrikeBounds {
	spot := decimal.NewFromFloat(spotPrice)

	return StrikeBounds{
		Min: spot.Mul(w.Lower),
		Max: spot.Mul(w.Upper),
	}
}

// Contains is inclusive on both ends.
func (b StrikeBounds) Contains(strike float64) bool {
	k := decimal.NewFromFloat(strike)
	return k.GreaterThanOrEqual(b.Min) && k.LessThanOrEqual(b.Max)
}

func FilterQuotesByStrike(quotes []eventmodels.OptionQuote, bounds StrikeBounds) []eventmodels.OptionQuote {
	filtered := make([]eventmodels.OptionQuote, 0, len(quotes))
	for _, q := range quotes {
		if bounds.Contains(q.Strike) {
			filtered = append(filtered, q)
		}
	}

	return filtered
}
