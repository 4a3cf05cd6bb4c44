// Package selection finds order statistics of unsorted slices in place.
//
// Select is a quickselect: it partitions the slice the way quicksort would,
// but only descends into the side holding the requested rank, giving
// expected linear time. A partition budget hardens it against adversarial
// inputs (introselect), capping the worst case at O(n log n).
package selection

import (
	"cmp"
	"errors"
	"fmt"
	"math/bits"
	"slices"
)

var (
	// ErrEmptyInput is returned when the input slice holds no elements.
	ErrEmptyInput = errors.New("selection: empty input")
	// ErrInvalidRank is returned when the requested rank is outside [0, n-1].
	ErrInvalidRank = errors.New("selection: rank out of range")
)

// Select rearranges items so that items[k] holds the element that would
// occupy index k in a fully sorted copy, and returns that element. Every
// element before index k ends up <= items[k] and every element after ends
// up >= items[k]; no stronger ordering is produced. Callers that need the
// original order preserved must pass a copy.
func Select[T cmp.Ordered](items []T, k int) (T, error) {
	var zero T
	n := len(items)
	if n == 0 {
		return zero, ErrEmptyInput
	}
	if k < 0 || k >= n {
		return zero, fmt.Errorf("%w: k=%d with n=%d", ErrInvalidRank, k, n)
	}
	return selectRange(items, k, partitionBudget(n)), nil
}

// partitionBudget bounds the number of partition rounds before the sort
// fallback kicks in. A well-behaved run needs about log2(n) rounds; the
// slack absorbs unlucky pivots on small ranges.
func partitionBudget(n int) int {
	return 2*bits.Len(uint(n)) + 16
}

func selectRange[T cmp.Ordered](items []T, k, budget int) T {
	lo, hi := 0, len(items)-1
	for lo < hi {
		if budget <= 0 {
			// Pivot selection has been defeated too many times. Sorting
			// the remaining window caps the total cost at O(n log n).
			slices.Sort(items[lo : hi+1])
			break
		}
		budget--
		p := partition(items, lo, hi)
		switch {
		case p == k:
			return items[k]
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
	return items[k]
}

// partition splits items[lo:hi+1] around a median-of-three pivot using
// Hoare's inward scans and returns the pivot's final resting index. Both
// scans stop on elements equal to the pivot, so duplicate-heavy inputs
// keep splitting near the middle instead of looping.
func partition[T cmp.Ordered](items []T, lo, hi int) int {
	medianOfThree(items, lo, hi)
	pivot := items[lo]
	i, j := lo, hi+1
	for {
		for {
			i++
			if i >= hi || items[i] >= pivot {
				break
			}
		}
		for {
			j--
			if j == lo || items[j] <= pivot {
				break
			}
		}
		if i >= j {
			break
		}
		items[i], items[j] = items[j], items[i]
	}
	items[lo], items[j] = items[j], items[lo]
	return j
}

// medianOfThree moves the median of the first, middle, and last elements
// of the range into the pivot slot at lo. Sorted and reverse-sorted ranges
// then split evenly instead of peeling off one element per round.
func medianOfThree[T cmp.Ordered](items []T, lo, hi int) {
	mid := int(uint(lo+hi) >> 1)
	if items[mid] < items[lo] {
		items[mid], items[lo] = items[lo], items[mid]
	}
	if items[hi] < items[lo] {
		items[hi], items[lo] = items[lo], items[hi]
	}
	if items[hi] < items[mid] {
		items[hi], items[mid] = items[mid], items[hi]
	}
	items[lo], items[mid] = items[mid], items[lo]
}
