package run

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

type OutputFormat string

const (
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatTable OutputFormat = "table"
	OutputFormatCSV   OutputFormat = "csv"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatJSON, OutputFormatTable, OutputFormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q: expected json, table or csv", s)
	}
}

func WriteOptionsChain(response *eventmodels.OptionsChainResponse, format OutputFormat, out io.Writer) error {
	switch format {
	case OutputFormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(response); err != nil {
			return fmt.Errorf("WriteOptionsChain: failed to encode json: %w", err)
		}
	case OutputFormatCSV:
		if err := gocsv.Marshal(&response.OptionsData, out); err != nil {
			return fmt.Errorf("WriteOptionsChain: failed to encode csv: %w", err)
		}
	case OutputFormatTable:
		writeOptionsTable(response, out)
	default:
		return fmt.Errorf("WriteOptionsChain: unknown output format %q", format)
	}

	return nil
}

func formatPrice(p *message.Printer, price *float64) string {
	if price == nil {
		return "-"
	}

	return fmt.Sprintf("$%s", p.Sprintf("%.2f", *price))
}

func writeOptionsTable(response *eventmodels.OptionsChainResponse, out io.Writer) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(out, "Spot: %s\n", formatPrice(p, &response.SpotPrice))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Expiry", "Strike", "Call", "Put", "Total"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, record := range response.OptionsData {
		table.Append([]string{
			record.Expiry,
			p.Sprintf("%.2f", record.Strike),
			formatPrice(p, record.CallPrice),
			formatPrice(p, record.PutPrice),
			formatPrice(p, record.TotalPrice),
		})
	}

	table.Render()
}
