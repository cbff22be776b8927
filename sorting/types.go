// Package sorting defines metrics, options and error sentinels for the sorts.
package sorting

import (
	"errors"

	"github.com/katalvlaran/sortlab/trace"
)

var (
	// ErrUnknownMethod is returned when a method number is outside 1..5.
	ErrUnknownMethod = errors.New("sorting: unknown method")

	// ErrRangeOutOfBounds is returned when a range variant receives bounds
	// outside the sequence.
	ErrRangeOutOfBounds = errors.New("sorting: range out of bounds")
)

// Metrics counts the work done by one sort call.
type Metrics struct {
	Comparisons int
	Swaps       int
}

// Add returns the element-wise sum of m and o.
func (m Metrics) Add(o Metrics) Metrics {
	return Metrics{
		Comparisons: m.Comparisons + o.Comparisons,
		Swaps:       m.Swaps + o.Swaps,
	}
}

// Option configures a sort call.
type Option func(*Options)

// Options holds per-call sort settings.
type Options struct {
	// Tracer observes each step; trace.Nop disables tracing.
	Tracer trace.Tracer
}

// DefaultOptions returns Options with tracing disabled.
func DefaultOptions() Options {
	return Options{Tracer: trace.Nop}
}

// WithTracer installs t as the step observer. A nil t keeps the default.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// IsSorted reports whether seq is in ascending order.
func IsSorted(seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] > seq[i] {
			return false
		}
	}
	return true
}

// sorter carries the sequence and tracer through one top-level call.
type sorter struct {
	seq     []int
	algo    string
	tr      trace.Tracer
	tracing bool
}

func newSorter(seq []int, algo string, opts []Option) *sorter {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &sorter{
		seq:     seq,
		algo:    algo,
		tr:      o.Tracer,
		tracing: !trace.IsNop(o.Tracer),
	}
}

// greater reports whether seq[i] > seq[j] and records the comparison.
func (s *sorter) greater(i, j int) bool {
	if s.tracing {
		s.tr.Record(trace.Event{Algorithm: s.algo, Kind: trace.Compare, I: i, J: j, X: s.seq[i], Y: s.seq[j]})
	}
	return s.seq[i] > s.seq[j]
}

// swap exchanges seq[i] and seq[j] and records the exchange.
func (s *sorter) swap(i, j int) {
	if s.tracing {
		s.tr.Record(trace.Event{Algorithm: s.algo, Kind: trace.Swap, I: i, J: j, X: s.seq[i], Y: s.seq[j]})
	}
	s.seq[i], s.seq[j] = s.seq[j], s.seq[i]
}

func (s *sorter) emit(e trace.Event) {
	if s.tracing {
		e.Algorithm = s.algo
		s.tr.Record(e)
	}
}
