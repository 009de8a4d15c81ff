package run

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

// ExpirySummary describes the straddle cost (call + put at one strike) across
// the strikes of a single expiry. Strikes missing either side are skipped;
// Priced counts the rest.
type ExpirySummary struct {
	Expiry         string
	Strikes        int
	Priced         int
	MinTotal       *float64
	MedianTotal    *float64
	MaxTotal       *float64
	CheapestStrike *float64
}

func Summarize(response *eventmodels.OptionsChainResponse) ([]ExpirySummary, error) {
	var summaries []ExpirySummary

	for _, expiry := range response.Expiries() {
		summary := ExpirySummary{Expiry: expiry}

		var totals stats.Float64Data
		var cheapest float64
		for _, record := range response.OptionsData {
			if record.Expiry != expiry {
				continue
			}

			summary.Strikes++

			if record.TotalPrice == nil {
				continue
			}

			if summary.CheapestStrike == nil || *record.TotalPrice < cheapest {
				cheapest = *record.TotalPrice
				strike := record.Strike
				summary.CheapestStrike = &strike
			}

			totals = append(totals, *record.TotalPrice)
		}

		summary.Priced = totals.Len()

		if summary.Priced > 0 {
			minTotal, err := stats.Min(totals)
			if err != nil {
				return nil, fmt.Errorf("Summarize: %s: min: %w", expiry, err)
			}

			median, err := stats.Median(totals)
			if err != nil {
				return nil, fmt.Errorf("Summarize: %s: median: %w", expiry, err)
			}

			maxTotal, err := stats.Max(totals)
			if err != nil {
				return nil, fmt.Errorf("Summarize: %s: max: %w", expiry, err)
			}

			summary.MinTotal = &minTotal
			summary.MedianTotal = &median
			summary.MaxTotal = &maxTotal
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func WriteSummaryTable(symbol eventmodels.StockSymbol, spotPrice float64, summaries []ExpirySummary, out io.Writer) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(out, "%s straddles, spot %s\n", symbol, formatPrice(p, &spotPrice))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Expiry", "Strikes", "Priced", "Min", "Median", "Max", "Cheapest Strike"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, s := range summaries {
		cheapest := "-"
		if s.CheapestStrike != nil {
			cheapest = p.Sprintf("%.2f", *s.CheapestStrike)
		}

		table.Append([]string{
			s.Expiry,
			fmt.Sprintf("%d", s.Strikes),
			fmt.Sprintf("%d", s.Priced),
			formatPrice(p, s.MinTotal),
			formatPrice(p, s.MedianTotal),
			formatPrice(p, s.MaxTotal),
			cheapest,
		})
	}

	table.Render()
}
