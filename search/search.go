package search

import "github.com/katalvlaran/sortlab/trace"

// Sequential scans seq from index 0 upward and returns the first index holding
// target. No ordering is required.
//
// Comparisons: i+1 when the target is found at i, len(seq) when it is absent.
// One trace.Compare event is recorded per comparison (I = scanned index,
// X = seq[I], Y = target).
//
// Complexity: O(n) time, O(1) space.
func Sequential(seq []int, target int, opts ...Option) Result {
	o := buildOptions(opts)
	tracing := !trace.IsNop(o.Tracer)

	res := Result{Index: NotFound}
	for i, v := range seq {
		res.Comparisons++
		if tracing {
			o.Tracer.Record(trace.Event{Algorithm: NameSequential, Kind: trace.Compare, I: i, J: i, X: v, Y: target})
		}
		if v == target {
			res.Index = i
			return res
		}
	}
	return res
}

// Binary searches an ascending seq for target.
//
// Precondition: seq is sorted ascending. This is NOT checked; on unsorted
// input the result is unspecified (it may miss a present value) but the call
// never panics.
//
// The window [lo, hi] starts at [0, len-1]. Each probe inspects
// mid = lo + (hi-lo)/2: equal returns mid, smaller moves lo to mid+1, larger
// moves hi to mid-1. The search ends with NotFound once lo > hi.
//
// Duplicates: the returned index is the first probed midpoint holding target,
// which is a matching index but not necessarily the lowest one.
//
// At most ⌊log₂ n⌋+1 probes are made. One trace.Probe event is recorded per
// probe (Lo, Mid, Hi, X = seq[Mid], Y = target).
//
// Complexity: O(log n) time, O(1) space.
func Binary(seq []int, target int, opts ...Option) Result {
	o := buildOptions(opts)
	tracing := !trace.IsNop(o.Tracer)

	res := Result{Index: NotFound}
	lo, hi := 0, len(seq)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		v := seq[mid]
		res.Probes++
		res.Comparisons++
		if tracing {
			o.Tracer.Record(trace.Event{Algorithm: NameBinary, Kind: trace.Probe, I: mid, Lo: lo, Mid: mid, Hi: hi, X: v, Y: target})
		}
		switch {
		case v == target:
			res.Index = mid
			return res
		case v < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return res
}
