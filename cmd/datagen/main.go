// Command datagen writes synthetic datasets to disk for benchmarking and
// manual testing: uniform and normal noise, pre-sorted ramps, constants,
// and the median-of-three killer permutation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"quickmedian/internal/benchmark"
)

func main() {
	shape := flag.String("shape", benchmark.ShapeUniform, "Dataset shape: "+strings.Join(benchmark.Shapes(), ", "))
	size := flag.Int("size", 10000, "Number of values to generate")
	seed := flag.Uint64("seed", 1, "Generator seed")
	outDir := flag.String("out", ".", "Output directory")
	flag.Parse()

	values, err := benchmark.Dataset(*shape, *size, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path := filepath.Join(*outDir, fmt.Sprintf("%s-%d.txt", *shape, *size))
	fmt.Printf("Generating shape '%s' (Size: %d, Seed: %d) to %s...\n", *shape, *size, *seed, path)

	if err := save(path, values); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done.")
}

func save(path string, values []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range values {
		if _, err := w.WriteString(strconv.FormatFloat(v, 'g', -1, 64) + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
