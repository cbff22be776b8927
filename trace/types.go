package trace

import "fmt"

// Kind identifies the type of step an Event describes.
type Kind int

const (
	// Compare: two elements were compared (I, J with values X, Y).
	Compare Kind = iota
	// Swap: elements at I and J were exchanged.
	Swap
	// Shift: element at I was moved one slot to J (insertion sort).
	Shift
	// Probe: binary search inspected Mid within the window [Lo, Hi].
	Probe
	// Pivot: quicksort chose the value X at index I as pivot for [Lo, Hi].
	Pivot
	// Split: mergesort divided [Lo, Hi] at Mid.
	Split
	// Merge: mergesort merged [Lo, Mid] with [Mid+1, Hi].
	Merge
	// Pass: bubble sort started pass number I.
	Pass
)

var kindNames = [...]string{
	Compare: "compare",
	Swap:    "swap",
	Shift:   "shift",
	Probe:   "probe",
	Pivot:   "pivot",
	Split:   "split",
	Merge:   "merge",
	Pass:    "pass",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Event is one observed algorithm step. Fields that do not apply to a given
// Kind are left at zero; see the Kind constants for which fields are set.
type Event struct {
	Algorithm string
	Kind      Kind

	// I and J are the element indices involved in the step.
	I, J int

	// Lo, Mid and Hi describe the active index window.
	Lo, Mid, Hi int

	// X and Y carry element values (e.g. seq[I] and seq[J] for Compare).
	X, Y int
}

// String renders the event the way verbose console mode prints it.
func (e Event) String() string {
	switch e.Kind {
	case Compare:
		return fmt.Sprintf("%s: compare [%d]=%d with [%d]=%d", e.Algorithm, e.I, e.X, e.J, e.Y)
	case Swap:
		return fmt.Sprintf("%s: swap [%d]=%d <-> [%d]=%d", e.Algorithm, e.I, e.X, e.J, e.Y)
	case Shift:
		return fmt.Sprintf("%s: shift %d from [%d] to [%d]", e.Algorithm, e.X, e.I, e.J)
	case Probe:
		return fmt.Sprintf("%s: probe lo=%d mid=%d hi=%d value=%d", e.Algorithm, e.Lo, e.Mid, e.Hi, e.X)
	case Pivot:
		return fmt.Sprintf("%s: pivot %d at [%d] for range [%d..%d]", e.Algorithm, e.X, e.I, e.Lo, e.Hi)
	case Split:
		return fmt.Sprintf("%s: split [%d..%d] at %d", e.Algorithm, e.Lo, e.Hi, e.Mid)
	case Merge:
		return fmt.Sprintf("%s: merge [%d..%d] with [%d..%d]", e.Algorithm, e.Lo, e.Mid, e.Mid+1, e.Hi)
	case Pass:
		return fmt.Sprintf("%s: pass %d", e.Algorithm, e.I)
	default:
		return fmt.Sprintf("%s: %s", e.Algorithm, e.Kind)
	}
}

// Tracer receives algorithm steps. Implementations must not retain or mutate
// the sequence being processed; they only see copies of indices and values.
type Tracer interface {
	Record(Event)
}

// Nop is a Tracer that discards every event.
var Nop Tracer = nopTracer{}

type nopTracer struct{}

func (nopTracer) Record(Event) {}

// Func adapts an ordinary function to the Tracer interface.
type Func func(Event)

// Record calls f(e).
func (f Func) Record(e Event) { f(e) }

// IsNop reports whether t is nil or the Nop tracer. Algorithms use it to skip
// building events nobody will see.
func IsNop(t Tracer) bool {
	if t == nil {
		return true
	}
	_, ok := t.(nopTracer)
	return ok
}
