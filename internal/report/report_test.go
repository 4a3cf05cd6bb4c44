package report

import (
	"strings"
	"testing"
)

func TestBins(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	bins := Bins(values, 5)
	if len(bins) != 5 {
		t.Fatalf("Bins() returned %d bins, want 5", len(bins))
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != len(values) {
		t.Errorf("bin counts sum to %d, want %d", total, len(values))
	}
	// Max value must land in the last class, not overflow past it.
	if bins[4].Count != 2 {
		t.Errorf("last bin count = %d, want 2 (values 8 and 9)", bins[4].Count)
	}
}

func TestBins_Constant(t *testing.T) {
	bins := Bins([]float64{3, 3, 3}, 10)
	if len(bins) != 1 {
		t.Fatalf("Bins() on constant data returned %d bins, want 1", len(bins))
	}
	if bins[0].Count != 3 || bins[0].Width != 100 {
		t.Errorf("constant bin = %+v, want Count 3 Width 100", bins[0])
	}
}

func TestBins_Empty(t *testing.T) {
	if bins := Bins(nil, 5); bins != nil {
		t.Errorf("Bins(nil) = %v, want nil", bins)
	}
}

func TestRender(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, "sample", []float64{1, 2, 3, 4}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := sb.String()
	for _, want := range []string{"sample", "<td>4</td>", "2.5"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
}

func TestRender_Empty(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, "empty", nil); err == nil {
		t.Error("Render() on empty data: expected error, got nil")
	}
}
