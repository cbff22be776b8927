package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/sortlab/arraygen"
	"github.com/katalvlaran/sortlab/internal/logging"
	"github.com/katalvlaran/sortlab/internal/metrics"
	"github.com/katalvlaran/sortlab/search"
	"github.com/katalvlaran/sortlab/sorting"
	"github.com/katalvlaran/sortlab/trace"
)

// Main menu options.
const (
	OptRegenerate   = 0
	OptSequential   = 1
	OptBubbleBinary = 2
	OptSortMenu     = 3
	OptExit         = 4
	OptStatistics   = 5
	OptComplexity   = 6
)

// Option configures a Controller.
type Option func(*Controller)

// WithVerbose sets the initial step-by-step tracing state.
func WithVerbose(v bool) Option {
	return func(c *Controller) { c.verbose = v }
}

// WithDisplayLimit caps how many elements are printed (0 prints all).
func WithDisplayLimit(n int) Option {
	return func(c *Controller) {
		if n >= 0 {
			c.displayLimit = n
		}
	}
}

// WithRand sets the RNG used for every generation. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("menu: WithRand(nil)")
	}
	return func(c *Controller) { c.rng = r }
}

// WithLogger sets the structured logger.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRecorder enables session statistics.
func WithRecorder(r *metrics.Recorder) Option {
	return func(c *Controller) { c.rec = r }
}

// WithInitial sets the request used to build the first sequence. Without it
// the learner is asked interactively before the menu is shown.
func WithInitial(req GenerateRequest) Option {
	return func(c *Controller) { c.initial = &req }
}

// Controller owns the sequence and dispatches menu choices to the search and
// sorting packages. It is single-threaded; Run blocks until exit.
type Controller struct {
	prompt Prompter
	out    io.Writer

	seq          []int
	verbose      bool
	displayLimit int
	rng          *rand.Rand
	initial      *GenerateRequest

	log *logging.Logger
	rec *metrics.Recorder
}

// New creates a Controller asking questions through p and printing on out.
func New(p Prompter, out io.Writer, opts ...Option) *Controller {
	c := &Controller{
		prompt:       p,
		out:          out,
		displayLimit: 100,
		log:          logging.NoopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = arraygen.NewRand(0)
	}
	return c
}

// Sequence returns the current sequence. The slice is owned by the Controller.
func (c *Controller) Sequence() []int { return c.seq }

// Verbose reports whether step-by-step tracing is on.
func (c *Controller) Verbose() bool { return c.verbose }

// Run builds the first sequence and then loops over the main menu until the
// exit option is chosen or input ends. User mistakes are reported and never
// end the loop; only I/O failures of the prompter are returned.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.firstSequence(ctx); err != nil {
		return ignoreEOF(err)
	}
	for {
		c.renderMenu()
		choice, err := c.prompt.MenuChoice()
		if err != nil {
			fmt.Fprintln(c.out, "Exiting...")
			return ignoreEOF(err)
		}
		if choice == OptExit {
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		}
		if err := c.dispatch(ctx, choice); err != nil {
			fmt.Fprintln(c.out, "Exiting...")
			return ignoreEOF(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Controller) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case OptRegenerate:
		return c.regenerate(ctx)
	case OptSequential:
		return c.sequentialSearch(ctx)
	case OptBubbleBinary:
		return c.bubbleThenBinary(ctx)
	case OptSortMenu:
		return c.sortMenu(ctx)
	case OptStatistics:
		return c.statistics()
	case OptComplexity:
		ComplexityTable(c.out)
		return nil
	default:
		c.log.LogInvalidChoice(ctx, "main", choice)
		fmt.Fprintln(c.out, "Invalid option.")
		return nil
	}
}

func (c *Controller) renderMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "===== SEARCH & SORT =====")
	fmt.Fprintln(c.out, "0) Regenerate array")
	fmt.Fprintln(c.out, "1) Sequential search")
	fmt.Fprintln(c.out, "2) Bubble sort + binary search")
	fmt.Fprintln(c.out, "3) Sort (choose method)")
	fmt.Fprintln(c.out, "4) Exit")
	fmt.Fprintln(c.out, "5) Session statistics")
	fmt.Fprintln(c.out, "6) Complexity table")
	if c.verbose {
		fmt.Fprintln(c.out, "[step-by-step: on]")
	}
}

func (c *Controller) renderSortMenu() {
	fmt.Fprintln(c.out, "Sort method:")
	for _, m := range sorting.Methods() {
		fmt.Fprintf(c.out, "  %d) %s\n", int(m), m)
	}
}

// firstSequence builds the initial sequence, asking until a valid one exists.
func (c *Controller) firstSequence(ctx context.Context) error {
	if c.initial != nil {
		if err := c.generate(ctx, *c.initial); err == nil {
			return nil
		}
	}
	for {
		req, err := c.prompt.GenerateRequest()
		if err != nil {
			return err
		}
		if err := c.generate(ctx, req); err == nil {
			return nil
		}
	}
}

// generate replaces the sequence; on failure the old one is kept.
func (c *Controller) generate(ctx context.Context, req GenerateRequest) error {
	seq, err := arraygen.Generate(req.Spec, req.Duplicates, req.Min, req.Max, arraygen.WithRand(c.rng))
	c.log.LogGenerate(ctx, req.Spec.Mode.String(), len(seq), req.Duplicates, err)
	if err != nil {
		fmt.Fprintf(c.out, "Could not generate array: %v\n", err)
		return err
	}
	c.seq = seq
	if c.rec != nil {
		c.rec.ObserveGenerate(len(seq))
	}
	Display(c.out, c.seq, c.displayLimit)
	return nil
}

func (c *Controller) regenerate(ctx context.Context) error {
	req, err := c.prompt.GenerateRequest()
	if err != nil {
		return err
	}
	_ = c.generate(ctx, req) // failure already reported; previous array kept

	v, err := c.prompt.Confirm("Show step-by-step process?")
	if err != nil {
		return err
	}
	c.verbose = v
	return nil
}

// tracer returns the observer for the next algorithm call.
func (c *Controller) tracer() trace.Tracer {
	var console, debug trace.Tracer
	if c.verbose {
		console = trace.NewWriter(c.out)
	}
	if c.log.Enabled(context.Background(), slog.LevelDebug) {
		debug = trace.NewLogger(c.log.Logger)
	}
	return trace.Multi(console, debug)
}

func (c *Controller) sequentialSearch(ctx context.Context) error {
	Display(c.out, c.seq, c.displayLimit)
	target, err := c.prompt.SearchValue()
	if err != nil {
		return err
	}
	res := search.Sequential(c.seq, target, search.WithTracer(c.tracer()))
	c.reportSearch(ctx, search.NameSequential, target, res)
	return nil
}

func (c *Controller) bubbleThenBinary(ctx context.Context) error {
	fmt.Fprintln(c.out, "Sorting array with bubble sort...")
	m := sorting.Bubble(c.seq, sorting.WithTracer(c.tracer()))
	c.observeSort(ctx, sorting.NameBubble, m)
	Display(c.out, c.seq, c.displayLimit)

	target, err := c.prompt.SearchValue()
	if err != nil {
		return err
	}
	res := search.Binary(c.seq, target, search.WithTracer(c.tracer()))
	c.reportSearch(ctx, search.NameBinary, target, res)
	return nil
}

func (c *Controller) sortMenu(ctx context.Context) error {
	c.renderSortMenu()
	n, err := c.prompt.SortMethodChoice()
	if err != nil {
		return err
	}
	method := sorting.Method(n)
	m, err := sorting.Sort(method, c.seq, sorting.WithTracer(c.tracer()))
	if err != nil {
		c.log.LogInvalidChoice(ctx, "sort", n)
		fmt.Fprintln(c.out, "Invalid method.")
		return nil
	}
	c.observeSort(ctx, method.String(), m)

	fmt.Fprintf(c.out, "Comparisons: %d\n", m.Comparisons)
	if method != sorting.MethodMerge {
		fmt.Fprintf(c.out, "Swaps: %d\n", m.Swaps)
	}
	fmt.Fprintln(c.out, "\nSorted array:")
	Display(c.out, c.seq, c.displayLimit)
	return nil
}

func (c *Controller) statistics() error {
	if c.rec == nil {
		fmt.Fprintln(c.out, "Statistics are disabled.")
		return nil
	}
	samples, err := c.rec.Snapshot()
	if err != nil {
		fmt.Fprintf(c.out, "Could not read statistics: %v\n", err)
		return nil
	}
	fmt.Fprintln(c.out, "Session statistics:")
	for _, s := range samples {
		fmt.Fprintf(c.out, "  %s\n", s)
	}
	return nil
}

func (c *Controller) observeSort(ctx context.Context, method string, m sorting.Metrics) {
	c.log.WithMethod(method).LogSort(ctx, len(c.seq), m.Comparisons, m.Swaps)
	if c.rec != nil {
		c.rec.ObserveSort(method, len(c.seq), m.Comparisons, m.Swaps)
	}
}

func (c *Controller) reportSearch(ctx context.Context, method string, target int, res search.Result) {
	c.log.WithMethod(method).LogSearch(ctx, target, res.Index, res.Comparisons)
	if c.rec != nil {
		c.rec.ObserveSearch(method, res.Found(), res.Comparisons)
	}
	if res.Found() {
		fmt.Fprintf(c.out, "Value found at position: %d\n", res.Index)
	} else {
		fmt.Fprintln(c.out, "Value not found.")
	}
	fmt.Fprintf(c.out, "Comparisons: %d\n", res.Comparisons)
}
