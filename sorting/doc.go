// Package sorting implements the classic comparison sorts over an integer
// sequence, each reporting operation counters and optionally tracing every step.
//
// What
//
//   - Elementary, in place, O(1) extra space:
//   - Bubble    Θ(n²) always; n-1 passes, no early exit; stable
//   - Selection Θ(n²) always; exactly n-1 swaps; not stable
//   - Insertion O(n) best (sorted), O(n²) worst (reversed); stable
//   - Divide and conquer:
//   - Quick     in place, last element of the range as pivot (Lomuto);
//     Θ(n log n) average, Θ(n²) on already sorted input
//   - Merge     exact-midpoint split, one temporary buffer per merge;
//     Θ(n log n) always; stable
//   - Method enumerates the five algorithms in menu order (1..5) and Sort
//     dispatches on it.
//
// Metrics
//
//	Every call returns a Metrics value counted from zero for that call.
//	Comparisons counts element comparisons. Swaps counts pairwise exchanges
//	(bubble, selection, quick) or element shifts (insertion). Merge sort moves
//	data through its buffer and never swaps, so its Swaps is always 0.
//	The recursive sorts return per-call Metrics that each caller adds to its
//	own, so the totals cover the whole recursion tree without shared state.
//
// Tracing
//
//	WithTracer(t) routes one trace.Event per comparison, swap or shift, plus
//	Pass (bubble), Pivot (quick), Split and Merge (merge) events. Tracing never
//	changes the result or the counters.
//
// Invariant
//
//	After any sort: for all i in [0, len-2], seq[i] <= seq[i+1], and the
//	multiset of elements is unchanged. The length never changes.
//
// Usage
//
//	m := sorting.Bubble(seq)
//	fmt.Println(m.Comparisons, m.Swaps)
//
//	m, err := sorting.Sort(sorting.MethodQuick, seq, sorting.WithTracer(c))
//	if errors.Is(err, sorting.ErrUnknownMethod) { ... }
//
// Errors
//
//   - ErrUnknownMethod    Sort/ParseMethod with a value outside 1..5.
//   - ErrRangeOutOfBounds QuickRange/MergeRange with lo < 0 or hi >= len(seq).
package sorting
