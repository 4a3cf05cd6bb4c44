// Package report renders an HTML summary of a dataset: the order-statistics
// table plus a class-interval histogram matching the grouped-median view.
package report

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"quickmedian/internal/dataset"
)

// Bin is one histogram class.
type Bin struct {
	Lower float64
	Upper float64
	Count int
	Width int // bar width in percent of the largest bin
}

type page struct {
	Name      string
	Generated string
	Summary   dataset.Summary
	Bins      []Bin
}

const maxBins = 24

// Bins groups values into at most n equal-width classes spanning [min, max].
func Bins(values []float64, n int) []Bin {
	if len(values) == 0 || n <= 0 {
		return nil
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	if minV == maxV {
		return []Bin{{Lower: minV, Upper: maxV, Count: len(values), Width: 100}}
	}

	width := (maxV - minV) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Lower = minV + float64(i)*width
		bins[i].Upper = minV + float64(i+1)*width
	}
	for _, v := range values {
		idx := int((v - minV) / width)
		if idx >= n {
			idx = n - 1 // max value lands in the last class
		}
		bins[idx].Count++
	}

	largest := 0
	for _, b := range bins {
		if b.Count > largest {
			largest = b.Count
		}
	}
	for i := range bins {
		bins[i].Width = int(math.Round(float64(bins[i].Count) / float64(largest) * 100))
	}
	return bins
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>quickmedian — {{.Name}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
table { border-collapse: collapse; margin-bottom: 2rem; }
td, th { border: 1px solid #ccc; padding: 0.3rem 0.8rem; text-align: right; }
th { background: #f0f0f0; }
.bar { background: #4a90d9; height: 1rem; display: inline-block; }
.bin { font-size: 0.8rem; white-space: nowrap; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<p>Generated {{.Generated}}</p>
<table>
<tr><th>Count</th><th>Min</th><th>Max</th><th>Mean</th><th>Median</th><th>Low</th><th>High</th><th>P25</th><th>P75</th></tr>
<tr>
<td>{{.Summary.Count}}</td>
<td>{{printf "%g" .Summary.Min}}</td>
<td>{{printf "%g" .Summary.Max}}</td>
<td>{{printf "%g" .Summary.Mean}}</td>
<td>{{printf "%g" .Summary.Median}}</td>
<td>{{printf "%g" .Summary.MedianLow}}</td>
<td>{{printf "%g" .Summary.MedianHigh}}</td>
<td>{{printf "%g" .Summary.P25}}</td>
<td>{{printf "%g" .Summary.P75}}</td>
</tr>
</table>
<h2>Distribution</h2>
<table>
{{range .Bins}}<tr>
<td class="bin">{{printf "%.4g" .Lower}} to {{printf "%.4g" .Upper}}</td>
<td>{{.Count}}</td>
<td style="border:none;text-align:left;width:24rem"><span class="bar" style="width:{{.Width}}%"></span></td>
</tr>
{{end}}</table>
</body>
</html>
`))

// Render writes the HTML report for values to w.
func Render(w io.Writer, name string, values []float64) error {
	sum, err := dataset.Summarize(values)
	if err != nil {
		return err
	}
	binCount := maxBins
	if len(values) < binCount {
		binCount = len(values)
	}
	return reportTemplate.Execute(w, page{
		Name:      name,
		Generated: time.Now().Format(time.RFC1123),
		Summary:   sum,
		Bins:      Bins(values, binCount),
	})
}

// Write renders the report into dir and returns the file path.
func Write(dir, name string, values []float64) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.html", name, time.Now().Format("20060102-150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: %w", err)
	}
	defer f.Close()
	if err := Render(f, name, values); err != nil {
		return "", err
	}
	return path, nil
}
