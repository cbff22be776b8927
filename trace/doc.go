// Package trace provides the step-by-step observation channel shared by the
// search and sorting packages.
//
// What
//
//   - Event describes one internal step of an algorithm: a comparison, a swap,
//     a shift, a binary-search probe, a pivot choice, a split or a merge.
//   - Tracer is the single capability algorithms depend on: Record(Event).
//   - Implementations:
//   - Nop       discards everything (the default when tracing is off)
//   - Func      adapts a plain function
//   - Collector keeps events in memory for inspection and tests
//   - Writer    prints one human-readable line per event (verbose console mode)
//   - Logger    forwards events to a *slog.Logger at debug level
//   - Multi     fans out to several tracers in order
//
// Why
//
//	Algorithms never look at a global "verbose" flag. The caller decides what
//	observing means by choosing a Tracer, and algorithm code stays identical
//	whether or not anyone is watching.
//
// Guarantees
//
//	Recording an event never changes the outcome of the algorithm or the
//	metrics it reports. Tracers are called synchronously, in step order, from
//	the goroutine running the algorithm.
//
// Usage
//
//	c := trace.NewCollector()
//	m := sorting.Bubble(seq, sorting.WithTracer(c))
//	fmt.Println(len(c.Events()), m.Comparisons)
//
//	// console verbose mode
//	sorting.Quick(seq, sorting.WithTracer(trace.NewWriter(os.Stdout)))
package trace
