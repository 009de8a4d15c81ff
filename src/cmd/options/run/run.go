package run

import (
	"context"
	"fmt"
	"io"

	"github.com/jiaming2012/options-viz/src/eventmodels"
)

type OptionsChainFetcher interface {
	FetchOptionsChain(ctx context.Context, symbol eventmodels.StockSymbol, nExpirations int) (*eventmodels.OptionsChainResponse, error)
}

type RunArgs struct {
	Symbol       eventmodels.StockSymbol
	NExpirations int
	Format       OutputFormat
}

func (args RunArgs) Validate() error {
	if err := args.Symbol.Validate(); err != nil {
		return fmt.Errorf("invalid symbol: %w", err)
	}

	if args.NExpirations < 1 {
		return fmt.Errorf("n-expirations must be at least 1, got %d", args.NExpirations)
	}

	return nil
}

// Fetch runs the options chain pipeline once and writes the result to out.
func Fetch(ctx context.Context, fetcher OptionsChainFetcher, args RunArgs, out io.Writer) error {
	if err := args.Validate(); err != nil {
		return fmt.Errorf("Fetch: %w", err)
	}

	response, err := fetcher.FetchOptionsChain(ctx, args.Symbol, args.NExpirations)
	if err != nil {
		return fmt.Errorf("Fetch: %w", err)
	}

	return WriteOptionsChain(response, args.Format, out)
}

// Summary runs the pipeline and writes per expiry straddle statistics.
func Summary(ctx context.Context, fetcher OptionsChainFetcher, args RunArgs, out io.Writer) error {
	if err := args.Validate(); err != nil {
		return fmt.Errorf("Summary: %w", err)
	}

	response, err := fetcher.FetchOptionsChain(ctx, args.Symbol, args.NExpirations)
	if err != nil {
		return fmt.Errorf("Summary: %w", err)
	}

	summaries, err := Summarize(response)
	if err != nil {
		return fmt.Errorf("Summary: %w", err)
	}

	WriteSummaryTable(args.Symbol, response.SpotPrice, summaries, out)

	return nil
}
