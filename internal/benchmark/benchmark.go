// Package benchmark measures Median latency over synthetic datasets and
// reports the distribution as an HdrHistogram percentile table. The
// adversarial shapes double as a live check that selection stays near
// n log n when its pivot strategy is under attack.
package benchmark

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/rs/zerolog/log"

	"quickmedian/stats"
)

// Shapes accepted by Dataset.
const (
	ShapeUniform   = "uniform"
	ShapeNormal    = "normal"
	ShapeSorted    = "sorted"
	ShapeReversed  = "reversed"
	ShapeOrganPipe = "organpipe" // ascending ramp followed by its mirror
	ShapeConstant  = "constant"
	ShapeKiller    = "killer" // median-of-three defeating permutation
)

// Config drives a benchmark run.
type Config struct {
	Size   int
	Rounds int
	Shape  string
	Seed   uint64
}

// Dataset generates n values of the given shape. Generation is
// deterministic for a fixed seed.
func Dataset(shape string, n int, seed uint64) ([]float64, error) {
	rng := rand.New(rand.NewPCG(seed, seed))
	values := make([]float64, n)
	switch shape {
	case ShapeUniform:
		for i := range values {
			values[i] = rng.Float64() * 1000
		}
	case ShapeNormal:
		for i := range values {
			values[i] = rng.NormFloat64() * 100
		}
	case ShapeSorted:
		for i := range values {
			values[i] = float64(i)
		}
	case ShapeReversed:
		for i := range values {
			values[i] = float64(n - i)
		}
	case ShapeOrganPipe:
		for i := range values {
			values[i] = float64(min(i, n-1-i))
		}
	case ShapeConstant:
		for i := range values {
			values[i] = 7
		}
	case ShapeKiller:
		for i, v := range medianOfThreeKiller(n - n%2) {
			values[i] = float64(v)
		}
		if n%2 == 1 {
			values[n-1] = float64(n)
		}
	default:
		return nil, fmt.Errorf("benchmark: unknown shape %q", shape)
	}
	return values, nil
}

// medianOfThreeKiller builds Musser's permutation of 1..n, the classic
// input that drives median-of-three pivoting toward its worst case.
// n must be even.
func medianOfThreeKiller(n int) []int {
	k := n / 2
	a := make([]int, n+1)
	for i := 1; i <= k; i++ {
		if i%2 == 1 {
			a[i] = i
			a[i+1] = k + i
		}
		a[k+i] = 2 * i
	}
	return a[1:]
}

// Run executes the benchmark and prints the percentile table to w.
func Run(w io.Writer, cfg Config) error {
	if cfg.Size < 1 {
		return fmt.Errorf("benchmark: size must be at least 1, got %d", cfg.Size)
	}
	if cfg.Rounds < 1 {
		return fmt.Errorf("benchmark: rounds must be at least 1, got %d", cfg.Rounds)
	}

	data, err := Dataset(cfg.Shape, cfg.Size, cfg.Seed)
	if err != nil {
		return err
	}

	log.Info().
		Str("shape", cfg.Shape).
		Int("size", cfg.Size).
		Int("rounds", cfg.Rounds).
		Msg("Starting median latency benchmark")

	hg := hdrhistogram.New(1, 60_000_000, 3) // 1us .. 60s
	work := make([]float64, len(data))
	t0 := time.Now()
	for r := 0; r < cfg.Rounds; r++ {
		copy(work, data)
		start := time.Now()
		if _, err := stats.Median(work); err != nil {
			return err
		}
		elapsed := time.Since(start).Microseconds()
		if elapsed < 1 {
			elapsed = 1
		}
		if err := hg.RecordValue(elapsed); err != nil {
			return fmt.Errorf("benchmark: failed to record value: %w", err)
		}
	}

	fmt.Fprintf(w, "median latency (us), shape=%s n=%d rounds=%d\n", cfg.Shape, cfg.Size, cfg.Rounds)
	if _, err := hg.PercentilesPrint(w, 1, 1.0); err != nil {
		return err
	}
	log.Info().Dur("total", time.Since(t0)).Msg("Benchmark finished")
	return nil
}

// Shapes lists the supported dataset shapes.
func Shapes() []string {
	return slices.Clone([]string{
		ShapeUniform, ShapeNormal, ShapeSorted, ShapeReversed, ShapeOrganPipe, ShapeConstant, ShapeKiller,
	})
}
