// Package search provides options and result types for searching an integer
// sequence.
package search

import "github.com/katalvlaran/sortlab/trace"

// NotFound is the Result.Index reported when the target is absent.
const NotFound = -1

// Algorithm names used in trace events and metrics labels.
const (
	NameSequential = "sequential"
	NameBinary     = "binary"
)

// Result is the outcome of a search.
//   - Index: position of the target, or NotFound.
//   - Comparisons: element comparisons performed (sequential search).
//   - Probes: midpoints inspected (binary search).
type Result struct {
	Index       int
	Comparisons int
	Probes      int
}

// Found reports whether the target was located.
func (r Result) Found() bool { return r.Index != NotFound }

// Option configures a search call.
type Option func(*Options)

// Options holds per-call search settings.
type Options struct {
	// Tracer receives one event per comparison or probe.
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

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
