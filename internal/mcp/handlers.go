package mcp

import (
	"context"
	"fmt"
	"slices"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"quickmedian/internal/dataset"
	"quickmedian/selection"
	"quickmedian/stats"
)

func handleComputeMedian(ctx context.Context, req *sdk.CallToolRequest, args MedianArgs) (*sdk.CallToolResult, MedianResult, error) {
	out, err := computeMedian(args)
	if err != nil {
		return nil, MedianResult{}, err
	}
	log.Debug().Str("variant", out.Variant).Int("count", out.Count).Msg("compute_median served")
	return nil, out, nil
}

func computeMedian(args MedianArgs) (MedianResult, error) {
	variant := args.Variant
	if variant == "" {
		variant = "median"
	}

	var (
		result float64
		err    error
	)
	switch variant {
	case "median":
		result, err = stats.Median(args.Values)
	case "low":
		result, err = stats.MedianLow(args.Values)
	case "high":
		result, err = stats.MedianHigh(args.Values)
	case "grouped":
		interval := args.Interval
		if interval == 0 {
			interval = 1
		}
		result, err = stats.MedianGrouped(args.Values, interval)
	default:
		return MedianResult{}, fmt.Errorf("unknown variant %q (expected median, low, high, or grouped)", variant)
	}
	if err != nil {
		return MedianResult{}, err
	}

	return MedianResult{
		Median:  result,
		Variant: variant,
		Count:   len(args.Values),
	}, nil
}

func handleSelectRank(ctx context.Context, req *sdk.CallToolRequest, args RankArgs) (*sdk.CallToolResult, RankResult, error) {
	out, err := selectRank(args)
	if err != nil {
		return nil, RankResult{}, err
	}
	return nil, out, nil
}

func selectRank(args RankArgs) (RankResult, error) {
	// Select permutes its input; the request payload must stay intact for
	// the SDK's structured-content echo.
	value, err := selection.Select(slices.Clone(args.Values), args.Rank)
	if err != nil {
		return RankResult{}, err
	}
	return RankResult{
		Value: value,
		Rank:  args.Rank,
		Count: len(args.Values),
	}, nil
}

func handleSummarize(ctx context.Context, req *sdk.CallToolRequest, args SummaryArgs) (*sdk.CallToolResult, dataset.Summary, error) {
	sum, err := dataset.Summarize(args.Values)
	if err != nil {
		return nil, dataset.Summary{}, err
	}
	return nil, sum, nil
}
