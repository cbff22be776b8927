package sorting

import (
	"fmt"

	"github.com/katalvlaran/sortlab/trace"
)

// Quick sorts seq in place with recursive quicksort.
//
// Pivot policy: the last element of the current range (Lomuto partition).
// Elements <= pivot end up before it, elements > pivot after it, and both
// sides are sorted recursively with the pivot excluded.
//
// Metrics: one comparison per element tested against the pivot; Swaps counts
// exchanges of two distinct positions, including the final pivot placement
// when it actually moves.
//
// Complexity: Θ(n log n) average; Θ(n²) when partitions are maximally
// unbalanced, e.g. already sorted input. Recursion depth is O(log n) typical
// and O(n) worst case.
func Quick(seq []int, opts ...Option) Metrics {
	s := newSorter(seq, NameQuick, opts)
	return s.quick(0, len(seq)-1)
}

// QuickRange sorts seq[lo..hi] (inclusive) in place with the same policy as
// Quick, leaving the rest of seq untouched. lo > hi is an empty range.
// Returns ErrRangeOutOfBounds if a non-empty range leaves the sequence.
func QuickRange(seq []int, lo, hi int, opts ...Option) (Metrics, error) {
	if err := checkRange(seq, lo, hi); err != nil {
		return Metrics{}, err
	}
	s := newSorter(seq, NameQuick, opts)
	return s.quick(lo, hi), nil
}

// quick sorts [lo, hi] and returns the metrics of this subtree only.
func (s *sorter) quick(lo, hi int) Metrics {
	if lo >= hi {
		return Metrics{}
	}
	p, m := s.partition(lo, hi)
	m = m.Add(s.quick(lo, p-1))
	m = m.Add(s.quick(p+1, hi))
	return m
}

// partition places seq[hi] at its final position p and returns p together
// with the work done by this partition step.
func (s *sorter) partition(lo, hi int) (int, Metrics) {
	var m Metrics
	pivot := s.seq[hi]
	s.emit(trace.Event{Kind: trace.Pivot, I: hi, Lo: lo, Hi: hi, X: pivot})

	i := lo - 1
	for j := lo; j < hi; j++ {
		m.Comparisons++
		if !s.greater(j, hi) {
			i++
			if i != j {
				s.swap(i, j)
				m.Swaps++
			}
		}
	}
	p := i + 1
	if p != hi {
		s.swap(p, hi)
		m.Swaps++
	}
	return p, m
}

// checkRange validates inclusive bounds for the range variants.
func checkRange(seq []int, lo, hi int) error {
	if lo > hi {
		return nil
	}
	if lo < 0 || hi >= len(seq) {
		return fmt.Errorf("%w: [%d..%d] with length %d", ErrRangeOutOfBounds, lo, hi, len(seq))
	}
	return nil
}
