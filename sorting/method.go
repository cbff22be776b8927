package sorting

import "fmt"

// Method selects one of the five sorts. Values match the menu numbering.
type Method int

const (
	MethodBubble Method = iota + 1
	MethodSelection
	MethodInsertion
	MethodQuick
	MethodMerge
)

// Info is one row of the complexity table shown to learners.
type Info struct {
	Name    string
	Best    string
	Average string
	Worst   string
	Space   string
	Stable  bool
	InPlace bool
}

var methodInfo = map[Method]Info{
	MethodBubble:    {Name: NameBubble, Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)", Stable: true, InPlace: true},
	MethodSelection: {Name: NameSelection, Best: "O(n²)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)", Stable: false, InPlace: true},
	MethodInsertion: {Name: NameInsertion, Best: "O(n)", Average: "O(n²)", Worst: "O(n²)", Space: "O(1)", Stable: true, InPlace: true},
	MethodQuick:     {Name: NameQuick, Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n²)", Space: "O(log n)", Stable: false, InPlace: true},
	MethodMerge:     {Name: NameMerge, Best: "O(n log n)", Average: "O(n log n)", Worst: "O(n log n)", Space: "O(n)", Stable: true, InPlace: false},
}

// Methods returns all methods in menu order.
func Methods() []Method {
	return []Method{MethodBubble, MethodSelection, MethodInsertion, MethodQuick, MethodMerge}
}

// ParseMethod converts a menu number into a Method.
func ParseMethod(n int) (Method, error) {
	m := Method(n)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %d (want 1..5)", ErrUnknownMethod, n)
	}
	return m, nil
}

// Valid reports whether m is one of the five methods.
func (m Method) Valid() bool {
	return m >= MethodBubble && m <= MethodMerge
}

// String returns the algorithm name, or "method(n)" for invalid values.
func (m Method) String() string {
	if info, ok := methodInfo[m]; ok {
		return info.Name
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// Info returns the complexity table row for m. The zero Info is returned for
// invalid methods.
func (m Method) Info() Info {
	return methodInfo[m]
}

// Sort runs method m over seq. An invalid m leaves seq untouched and returns
// ErrUnknownMethod.
func Sort(m Method, seq []int, opts ...Option) (Metrics, error) {
	switch m {
	case MethodBubble:
		return Bubble(seq, opts...), nil
	case MethodSelection:
		return Selection(seq, opts...), nil
	case MethodInsertion:
		return Insertion(seq, opts...), nil
	case MethodQuick:
		return Quick(seq, opts...), nil
	case MethodMerge:
		return Merge(seq, opts...), nil
	default:
		return Metrics{}, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}
