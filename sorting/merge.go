package sorting

import "github.com/katalvlaran/sortlab/trace"

// Merge sorts seq with top-down mergesort.
//
// Each range is split at mid = lo + (hi-lo)/2, both halves are sorted
// recursively, and the halves are merged through one temporary buffer sized
// to the range, then copied back. Ties take the left element first, so the
// sort is stable.
//
// Metrics: Comparisons counts one per placement that compares the fronts of
// both halves; draining a leftover half costs nothing. Swaps is always 0.
//
// Complexity: Θ(n log n) time in every case, O(n) extra space for the merge
// buffers, O(log n) recursion depth.
func Merge(seq []int, opts ...Option) Metrics {
	s := newSorter(seq, NameMerge, opts)
	return s.mergeSort(0, len(seq)-1)
}

// MergeRange sorts seq[lo..hi] (inclusive) with the same policy as Merge,
// leaving the rest of seq untouched. lo > hi is an empty range.
// Returns ErrRangeOutOfBounds if a non-empty range leaves the sequence.
func MergeRange(seq []int, lo, hi int, opts ...Option) (Metrics, error) {
	if err := checkRange(seq, lo, hi); err != nil {
		return Metrics{}, err
	}
	s := newSorter(seq, NameMerge, opts)
	return s.mergeSort(lo, hi), nil
}

// mergeSort sorts [lo, hi] and returns the metrics of this subtree only.
func (s *sorter) mergeSort(lo, hi int) Metrics {
	if lo >= hi {
		return Metrics{}
	}
	mid := lo + (hi-lo)/2
	s.emit(trace.Event{Kind: trace.Split, Lo: lo, Mid: mid, Hi: hi})

	m := s.mergeSort(lo, mid)
	m = m.Add(s.mergeSort(mid+1, hi))
	return m.Add(s.merge(lo, mid, hi))
}

// merge combines the sorted runs [lo, mid] and [mid+1, hi].
func (s *sorter) merge(lo, mid, hi int) Metrics {
	var m Metrics
	s.emit(trace.Event{Kind: trace.Merge, Lo: lo, Mid: mid, Hi: hi})

	buf := make([]int, 0, hi-lo+1)
	i, j := lo, mid+1
	for i <= mid && j <= hi {
		m.Comparisons++
		if s.greater(i, j) {
			buf = append(buf, s.seq[j])
			j++
		} else {
			buf = append(buf, s.seq[i])
			i++
		}
	}
	buf = append(buf, s.seq[i:mid+1]...)
	buf = append(buf, s.seq[j:hi+1]...)
	copy(s.seq[lo:hi+1], buf)
	return m
}
