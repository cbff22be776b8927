package sorting

import "github.com/katalvlaran/sortlab/trace"

// Algorithm names used in trace events and metrics labels.
const (
	NameBubble    = "bubble"
	NameSelection = "selection"
	NameInsertion = "insertion"
	NameQuick     = "quick"
	NameMerge     = "merge"
)

// Bubble sorts seq in place by repeated adjacent-pair passes.
//
// It always runs n-1 passes over the shrinking unsorted prefix, with no
// early exit when a pass makes no swap, so comparisons are exactly n(n-1)/2
// for every input. Swaps equal the number of inversions. Stable.
//
// Complexity: Θ(n²) time in every case, O(1) space.
func Bubble(seq []int, opts ...Option) Metrics {
	s := newSorter(seq, NameBubble, opts)
	var m Metrics
	n := len(seq)
	for pass := 0; pass < n-1; pass++ {
		s.emit(trace.Event{Kind: trace.Pass, I: pass + 1, Lo: 0, Hi: n - 1 - pass})
		for j := 0; j < n-1-pass; j++ {
			m.Comparisons++
			if s.greater(j, j+1) {
				s.swap(j, j+1)
				m.Swaps++
			}
		}
	}
	return m
}

// Selection sorts seq in place by moving the minimum of the unsorted suffix
// into position i, for i = 0..n-2.
//
// Each position gets exactly one swap, even when the minimum already sits at
// i (the exchange is then a no-op), so Swaps is always n-1 for n >= 1.
// Comparisons are always n(n-1)/2. Not stable.
//
// Complexity: Θ(n²) time in every case, O(1) space.
func Selection(seq []int, opts ...Option) Metrics {
	s := newSorter(seq, NameSelection, opts)
	var m Metrics
	n := len(seq)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			m.Comparisons++
			if s.greater(minIdx, j) {
				minIdx = j
			}
		}
		s.swap(i, minIdx)
		m.Swaps++
	}
	return m
}

// Insertion sorts seq in place by shifting each seq[i], i = 1..n-1, left past
// its larger predecessors. Swaps counts the single-slot shifts.
//
// Already ascending input costs n-1 comparisons and zero shifts; reversed
// input costs n(n-1)/2 of each. Stable.
//
// Complexity: O(n) best, O(n²) average and worst, O(1) space.
func Insertion(seq []int, opts ...Option) Metrics {
	s := newSorter(seq, NameInsertion, opts)
	var m Metrics
	for i := 1; i < len(seq); i++ {
		key := seq[i]
		j := i - 1
		for j >= 0 {
			m.Comparisons++
			if s.tracing {
				s.tr.Record(trace.Event{Algorithm: NameInsertion, Kind: trace.Compare, I: j, J: i, X: seq[j], Y: key})
			}
			if seq[j] <= key {
				break
			}
			s.emit(trace.Event{Kind: trace.Shift, I: j, J: j + 1, X: seq[j]})
			seq[j+1] = seq[j]
			m.Swaps++
			j--
		}
		seq[j+1] = key
	}
	return m
}
