package eventservices

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

// BuildOptionsChain assembles the flattened call/put records for the first
// nExpirations expirations of ticker. The strike window is derived once from
// the spot price read when the ticker was resolved.
func BuildOptionsChain(ctx context.Context, ticker *Ticker, nExpirations int, window StrikeWindow) (*eventmodels.OptionsChainResponse, error) {
	tracer := otel.Tracer("BuildOptionsChain")
	ctx, span := tracer.Start(ctx, "BuildOptionsChain")
	defer span.End()

	expirations, err := ticker.Expirations(ctx)
	if err != nil {
		return nil, err
	}

	if len(expirations) == 0 {
		return nil, eventmodels.NewNoOptionsDataError()
	}

	if nExpirations < len(expirations) {
		expirations = expirations[:nExpirations]
	}

	bounds := window.Bounds(ticker.SpotPrice)

	span.SetAttributes(
		attribute.String("symbol", ticker.Symbol.String()),
		attribute.Float64("spot_price", ticker.SpotPrice),
		attribute.Int("expirations", len(expirations)),
	)

	response := eventmodels.NewOptionsChainResponse(ticker.SpotPrice)

	for _, expiry := range expirations {
		chain, err := ticker.OptionChain(ctx, expiry)
		if err != nil {
			return nil, err
		}

		calls := FilterQuotesByStrike(chain.Calls, bounds)
		puts := FilterQuotesByStrike(chain.Puts, bounds)

		records := MergeCallsAndPuts(expiry, calls, puts)

		span.AddEvent("merged expiration", trace.WithAttributes(
			attribute.String("expiry", expiry),
			attribute.Int("records", len(records)),
		))

		log.WithContext(ctx).Debugf("BuildOptionsChain: %s %s: %d calls, %d puts, %d records", ticker.Symbol, expiry, len(calls), len(puts), len(records))

		response.OptionsData = append(response.OptionsData, records...)
	}

	return response, nil
}

// MergeCallsAndPuts outer joins both sides on strike. Every strike present on
// either side yields one record, sorted by strike. A side without a quote or
// without a last price leaves its price and the total nil. When a side lists
// the same strike twice, the first row wins.
func MergeCallsAndPuts(expiry string, calls, puts []eventmodels.OptionQuote) []eventmodels.OptionRecord {
	byStrike := make(map[float64]*eventmodels.OptionRecord)
	seenCalls := make(map[float64]bool)
	seenPuts := make(map[float64]bool)

	recordFor := func(strike float64) *eventmodels.OptionRecord {
		record, found := byStrike[strike]
		if !found {
			record = &eventmodels.OptionRecord{
				Expiry: expiry,
				Strike: strike,
			}
			byStrike[strike] = record
		}

		return record
	}

	for _, c := range calls {
		if seenCalls[c.Strike] {
			log.Debugf("MergeCallsAndPuts: %s: duplicate call strike %v ignored", expiry, c.Strike)
			continue
		}

		seenCalls[c.Strike] = true
		recordFor(c.Strike).CallPrice = c.LastPrice
	}

	for _, p := range puts {
		if seenPuts[p.Strike] {
			log.Debugf("MergeCallsAndPuts: %s: duplicate put strike %v ignored", expiry, p.Strike)
			continue
		}

		seenPuts[p.Strike] = true
		recordFor(p.Strike).PutPrice = p.LastPrice
	}

	records := make([]eventmodels.OptionRecord, 0, len(byStrike))
	for _, record := range byStrike {
		record.TotalPrice = sumPrices(record.CallPrice, record.PutPrice)
		records = append(records, *record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Strike < records[j].Strike
	})

	return records
}

func sumPrices(callPrice, putPrice *float64) *float64 {
	if callPrice == nil || putPrice == nil {
		return nil
	}

	total, _ := decimal.NewFromFloat(*callPrice).Add(decimal.NewFromFloat(*putPrice)).Float64()

	return &total
}
