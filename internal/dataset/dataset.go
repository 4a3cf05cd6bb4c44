// Package dataset parses numeric input and computes selection-based
// summaries. It is the boundary layer between raw text input and the
// stats/selection packages.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"quickmedian/selection"
	"quickmedian/stats"
)

// Summary describes a dataset through its order statistics.
type Summary struct {
	Count      int     `json:"count"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	MedianLow  float64 `json:"median_low"`
	MedianHigh float64 `json:"median_high"`
	P25        float64 `json:"p25"`
	P75        float64 `json:"p75"`
}

// Read parses whitespace- or comma-separated numbers from r.
func Read(r io.Reader) ([]float64, error) {
	var values []float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		for _, tok := range strings.Split(sc.Text(), ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: invalid value %q: %w", tok, err)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read failed: %w", err)
	}
	return values, nil
}

// ReadFile parses a dataset file.
func ReadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Summarize computes the order-statistics summary of values. The input
// slice is not modified.
func Summarize(values []float64) (Summary, error) {
	n := len(values)
	if n == 0 {
		return Summary{}, stats.ErrEmptyInput
	}

	var minV, maxV, sum float64
	minV, maxV = values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		sum += v
	}

	median, err := stats.Median(values)
	if err != nil {
		return Summary{}, err
	}
	low, err := stats.MedianLow(values)
	if err != nil {
		return Summary{}, err
	}
	high, err := stats.MedianHigh(values)
	if err != nil {
		return Summary{}, err
	}
	p25, err := quartile(values, 1)
	if err != nil {
		return Summary{}, err
	}
	p75, err := quartile(values, 3)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:      n,
		Min:        minV,
		Max:        maxV,
		Mean:       sum / float64(n),
		Median:     median,
		MedianLow:  low,
		MedianHigh: high,
		P25:        p25,
		P75:        p75,
	}, nil
}

// quartile returns the nearest-rank q-th quartile (q in {1, 3}).
func quartile(values []float64, q int) (float64, error) {
	work := make([]float64, len(values))
	copy(work, values)
	k := q * (len(values) - 1) / 4
	return selection.Select(work, k)
}
