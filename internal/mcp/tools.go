package mcp

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// MedianArgs is the input for the compute_median tool.
type MedianArgs struct {
	Values   []float64 `json:"values"`
	Variant  string    `json:"variant,omitempty"`
	Interval float64   `json:"interval,omitempty"`
}

// MedianResult is the output of the compute_median tool.
type MedianResult struct {
	Median  float64 `json:"median"`
	Variant string  `json:"variant"`
	Count   int     `json:"count"`
}

// RankArgs is the input for the select_rank tool.
type RankArgs struct {
	Values []float64 `json:"values"`
	Rank   int       `json:"rank"`
}

// RankResult is the output of the select_rank tool.
type RankResult struct {
	Value float64 `json:"value"`
	Rank  int     `json:"rank"`
	Count int     `json:"count"`
}

// SummaryArgs is the input for the summarize_dataset tool.
type SummaryArgs struct {
	Values []float64 `json:"values"`
}

func registerTools(srv *sdk.Server) error {
	medianSchema, err := jsonschema.For[MedianArgs](nil)
	if err != nil {
		return fmt.Errorf("mcp: building compute_median schema: %w", err)
	}
	medianSchema.Properties["values"].Description = "The data points (at least one)"
	medianSchema.Properties["variant"].Description = "One of: median (default), low, high, grouped"
	medianSchema.Properties["interval"].Description = "Class width for variant=grouped (default 1)"
	sdk.AddTool(srv, &sdk.Tool{
		Name: "compute_median",
		Description: "Compute the median of a list of numbers via quickselect. " +
			"Variant 'low'/'high' picks the lower/upper middle element, 'grouped' interpolates within a class interval.",
		InputSchema: medianSchema,
	}, handleComputeMedian)

	rankSchema, err := jsonschema.For[RankArgs](nil)
	if err != nil {
		return fmt.Errorf("mcp: building select_rank schema: %w", err)
	}
	rankSchema.Properties["rank"].Description = "Zero-based rank in [0, len(values)-1]"
	sdk.AddTool(srv, &sdk.Tool{
		Name:        "select_rank",
		Description: "Find the k-th smallest value (0-indexed order statistic) of a list of numbers.",
		InputSchema: rankSchema,
	}, handleSelectRank)

	summarySchema, err := jsonschema.For[SummaryArgs](nil)
	if err != nil {
		return fmt.Errorf("mcp: building summarize_dataset schema: %w", err)
	}
	sdk.AddTool(srv, &sdk.Tool{
		Name:        "summarize_dataset",
		Description: "Summarize a list of numbers: count, min, max, mean, median (plus low/high), and quartiles.",
		InputSchema: summarySchema,
	}, handleSummarize)

	return nil
}
