// Package sortlab is a console tutor for the classic search and sort
// algorithms: generate an integer sequence, search it, sort it and watch
// every comparison, swap and probe as it happens.
//
// 🚀 What is in sortlab?
//
//	• Searching: sequential scan, binary search on sorted data
//	• Elementary sorts: bubble, selection, insertion
//	• Divide and conquer: quicksort (Lomuto), mergesort
//	• Operation counters returned by every call (comparisons, swaps, probes)
//	• Optional step-by-step tracing through a pluggable Tracer
//	• A menu-driven console with session statistics and a complexity table
//
// ✨ Why sortlab?
//
//   - Counters are exact and deterministic, so lessons can quote them
//   - Tracing is a side channel; it never changes results or counts
//   - Seeded generation makes every session reproducible
//
// Packages:
//
//	search/           Sequential, Binary
//	sorting/          Bubble, Selection, Insertion, Quick, Merge + Method dispatch
//	trace/            Event, Tracer and ready-made tracers (Collector, Writer, Logger)
//	arraygen/         seeded sequence generation (N, N×N, N×M; with or without repeats)
//	menu/             interactive controller, console prompts, display helpers
//	internal/config/  TOML / YAML start-up configuration
//	internal/logging/ log/slog wrapper
//	internal/metrics/ Prometheus counters on a private registry
//	cmd/sortlab/      the executable
//
// Quick example:
//
//	seq := []int{5, 3, 8, 1}
//	m := sorting.Bubble(seq, sorting.WithTracer(trace.NewWriter(os.Stdout)))
//	// seq == [1 3 5 8], m.Comparisons == 6, m.Swaps == 4
//
//	go install github.com/katalvlaran/sortlab/cmd/sortlab@latest
package sortlab
