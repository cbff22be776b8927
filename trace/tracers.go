package trace

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Collector stores every recorded event in order.
// It is not safe for concurrent use; algorithms in this module are synchronous.
type Collector struct {
	events []Event
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Record appends e.
func (c *Collector) Record(e Event) {
	c.events = append(c.events, e)
}

// Events returns the recorded events. The slice is owned by the Collector.
func (c *Collector) Events() []Event {
	return c.events
}

// Count returns how many recorded events have the given kind.
func (c *Collector) Count(k Kind) int {
	n := 0
	for _, e := range c.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Reset drops all recorded events, keeping the backing storage.
func (c *Collector) Reset() {
	c.events = c.events[:0]
}

// Writer prints one numbered line per event to an io.Writer.
// The first write error is kept and further output is suppressed.
type Writer struct {
	w    io.Writer
	step int
	err  error
}

// NewWriter returns a Writer tracer printing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Record prints e prefixed by its 1-based step number.
func (tw *Writer) Record(e Event) {
	if tw.err != nil {
		return
	}
	tw.step++
	_, tw.err = fmt.Fprintf(tw.w, "  step %d: %s\n", tw.step, e)
}

// Steps returns how many events were printed.
func (tw *Writer) Steps() int { return tw.step }

// Err returns the first write error, if any.
func (tw *Writer) Err() error { return tw.err }

// Logger forwards events to a structured logger at debug level.
type Logger struct {
	log *slog.Logger
}

// NewLogger wraps l. A nil l falls back to slog.Default().
func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{log: l}
}

// Record emits e as a debug record with one attribute per field.
func (tl *Logger) Record(e Event) {
	ctx := context.Background()
	if !tl.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	tl.log.LogAttrs(ctx, slog.LevelDebug, "trace",
		slog.String("algorithm", e.Algorithm),
		slog.String("kind", e.Kind.String()),
		slog.Int("i", e.I),
		slog.Int("j", e.J),
		slog.Int("lo", e.Lo),
		slog.Int("mid", e.Mid),
		slog.Int("hi", e.Hi),
		slog.Int("x", e.X),
		slog.Int("y", e.Y),
	)
}

// Multi returns a Tracer that records each event to every non-nop tracer in
// ts, in argument order. With no usable tracers it returns Nop.
func Multi(ts ...Tracer) Tracer {
	live := make([]Tracer, 0, len(ts))
	for _, t := range ts {
		if !IsNop(t) {
			live = append(live, t)
		}
	}
	switch len(live) {
	case 0:
		return Nop
	case 1:
		return live[0]
	}
	return multi(live)
}

type multi []Tracer

func (m multi) Record(e Event) {
	for _, t := range m {
		t.Record(e)
	}
}
