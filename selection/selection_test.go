package selection

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		items    []int
		k        int
		expected int
	}{
		{"SingleItem", []int{5}, 0, 5},
		{"TwoItemsLow", []int{9, 1}, 0, 1},
		{"TwoItemsHigh", []int{9, 1}, 1, 9},
		{"Unsorted", []int{10, 2, 8, 4, 6}, 2, 6},
		{"AlreadySorted", []int{1, 2, 3, 4, 5, 6, 7}, 3, 4},
		{"ReverseSorted", []int{7, 6, 5, 4, 3, 2, 1}, 3, 4},
		{"Duplicates", []int{3, 1, 3, 1, 3}, 2, 3},
		{"Negatives", []int{-5, 3, -1, 0, 2}, 1, -1},
		{"MinRank", []int{4, 2, 9, 7}, 0, 2},
		{"MaxRank", []int{4, 2, 9, 7}, 3, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.items, tt.k)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Select() = %v, want %v", got, tt.expected)
			}
			if tt.items[tt.k] != tt.expected {
				t.Errorf("items[k] = %v after Select, want %v", tt.items[tt.k], tt.expected)
			}
		})
	}
}

func TestSelect_Errors(t *testing.T) {
	if _, err := Select([]int{}, 0); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Select on empty slice: err = %v, want ErrEmptyInput", err)
	}
	if _, err := Select([]int{1, 2, 3}, -1); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("Select with k=-1: err = %v, want ErrInvalidRank", err)
	}
	if _, err := Select([]int{1, 2, 3}, 3); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("Select with k=n: err = %v, want ErrInvalidRank", err)
	}
}

func TestSelect_AllEqual(t *testing.T) {
	items := []int{7, 7, 7, 7, 7}
	for k := range items {
		got, err := Select(slices.Clone(items), k)
		if err != nil {
			t.Fatalf("Select(k=%d) error = %v", k, err)
		}
		if got != 7 {
			t.Errorf("Select(k=%d) = %v, want 7", k, got)
		}
	}
}

func TestSelect_Strings(t *testing.T) {
	items := []string{"pear", "apple", "orange", "banana", "kiwi"}
	got, err := Select(items, 2)
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got != "kiwi" {
		t.Errorf("Select() = %q, want %q", got, "kiwi")
	}
}

// Running Select for every rank must reconstruct the fully sorted slice.
func TestSelect_AllRanksReconstructSorted(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 17))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.IntN(60)
		items := make([]int, n)
		for i := range items {
			items[i] = rng.IntN(20) - 10 // force duplicates and negatives
		}
		want := slices.Clone(items)
		slices.Sort(want)

		got := make([]int, n)
		for k := 0; k < n; k++ {
			v, err := Select(slices.Clone(items), k)
			if err != nil {
				t.Fatalf("Select(k=%d) error = %v", k, err)
			}
			got[k] = v
		}
		if !slices.Equal(got, want) {
			t.Fatalf("rank readout %v does not match sorted %v (input %v)", got, want, items)
		}
	}
}

// Differential test against the sort-and-index reference, including the
// partial-order postcondition around the selected rank.
func TestSelect_RandomizedAgainstSort(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 2000; trial++ {
		n := 1 + rng.IntN(200)
		items := make([]float64, n)
		for i := range items {
			switch rng.IntN(3) {
			case 0:
				items[i] = float64(rng.IntN(10)) // duplicate-heavy
			case 1:
				items[i] = rng.NormFloat64() * 100
			default:
				items[i] = -rng.Float64()
			}
		}
		sorted := slices.Clone(items)
		slices.Sort(sorted)

		k := rng.IntN(n)
		work := slices.Clone(items)
		got, err := Select(work, k)
		if err != nil {
			t.Fatalf("Select() error = %v", err)
		}
		if got != sorted[k] {
			t.Fatalf("Select(k=%d) = %v, want %v (input %v)", k, got, sorted[k], items)
		}
		for i := 0; i < k; i++ {
			if work[i] > work[k] {
				t.Fatalf("work[%d]=%v > work[k=%d]=%v after Select", i, work[i], k, work[k])
			}
		}
		for i := k + 1; i < n; i++ {
			if work[i] < work[k] {
				t.Fatalf("work[%d]=%v < work[k=%d]=%v after Select", i, work[i], k, work[k])
			}
		}
	}
}

// medianOfThreeKiller builds a permutation of 1..n that drives
// median-of-three pivoting toward its worst case (Musser's construction).
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

// Adversarial inputs must still finish quickly and correctly; the
// partition budget forces the sort fallback instead of quadratic probing.
func TestSelect_MedianOfThreeKiller(t *testing.T) {
	const n = 10000
	items := medianOfThreeKiller(n)
	for _, k := range []int{0, n/2 - 1, n / 2, n - 1} {
		got, err := Select(slices.Clone(items), k)
		if err != nil {
			t.Fatalf("Select(k=%d) error = %v", k, err)
		}
		if got != k+1 {
			t.Errorf("Select(k=%d) = %v, want %v", k, got, k+1)
		}
	}
}

// Exhausting the partition budget must hand the remaining window to the
// sort fallback and still produce the exact rank.
func TestSelectRange_SortFallback(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 42))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.IntN(100)
		items := make([]int, n)
		for i := range items {
			items[i] = rng.IntN(50)
		}
		sorted := slices.Clone(items)
		slices.Sort(sorted)

		k := rng.IntN(n)
		for _, budget := range []int{0, 1, 2} {
			got := selectRange(slices.Clone(items), k, budget)
			if got != sorted[k] {
				t.Fatalf("selectRange(k=%d, budget=%d) = %v, want %v (input %v)",
					k, budget, got, sorted[k], items)
			}
		}
	}
}

func BenchmarkSelect(b *testing.B) {
	rng := rand.New(rand.NewPCG(7, 9))
	const n = 100_000
	items := make([]float64, n)
	for i := range items {
		items[i] = rng.Float64()
	}
	work := make([]float64, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, items)
		if _, err := Select(work, n/2); err != nil {
			b.Fatal(err)
		}
	}
}
