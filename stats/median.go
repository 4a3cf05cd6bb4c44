// Package stats provides selection-based medians and related order
// statistics over numeric slices. All functions work on a private copy of
// the input, so the caller's slice is never reordered.
package stats

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	"quickmedian/selection"
)

// Real covers the element types the median functions accept.
type Real interface {
	constraints.Integer | constraints.Float
}

var (
	// ErrEmptyInput is returned when a median is requested for zero data points.
	ErrEmptyInput = errors.New("stats: empty input")
	// ErrInvalidInterval is returned when MedianGrouped is given a non-positive class width.
	ErrInvalidInterval = errors.New("stats: class interval must be positive")
)

// Median returns the middle element for an odd number of values, and the
// average of the two middle elements for an even number. Integer inputs
// with an even count therefore produce a fractional result.
func Median[T Real](values []T) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	work := slices.Clone(values)
	if n%2 == 1 {
		mid, err := selection.Select(work, n/2)
		if err != nil {
			return 0, err
		}
		return float64(mid), nil
	}
	lower, err := selection.Select(work, n/2-1)
	if err != nil {
		return 0, err
	}
	// Select leaves everything right of rank n/2-1 greater or equal, so
	// the upper middle element is the minimum of that tail. This recovers
	// both ranks from a single partition pass.
	upper := slices.Min(work[n/2:])
	return (float64(lower) + float64(upper)) / 2, nil
}

// MedianLow returns the lower of the two middle elements for an even
// count, and the middle element for an odd count. The result is always an
// element of the input, never an average.
func MedianLow[T Real](values []T) (T, error) {
	n := len(values)
	if n == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	return selection.Select(slices.Clone(values), (n-1)/2)
}

// MedianHigh returns the upper of the two middle elements for an even
// count, and the middle element for an odd count.
func MedianHigh[T Real](values []T) (T, error) {
	n := len(values)
	if n == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	return selection.Select(slices.Clone(values), n/2)
}

// MedianGrouped estimates the median of grouped data, treating each value
// as the midpoint of a class of width interval. Interpolation needs the
// class boundary plus the counts below and inside the median's class, so
// this sorts a copy instead of selecting.
//
// MedianGrouped([1, 2, 2, 3, 4], 1) == 2.25.
func MedianGrouped[T Real](values []T, interval float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if !(interval > 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}
	data := slices.Clone(values)
	slices.Sort(data)

	x := data[n/2]
	first, _ := slices.BinarySearch(data, x)
	last := first
	for last < n && data[last] == x {
		last++
	}

	lower := float64(x) - interval/2
	cf := float64(first)       // cumulative count below the median's class
	f := float64(last - first) // count within the median's class
	return lower + interval*(float64(n)/2-cf)/f, nil
}
