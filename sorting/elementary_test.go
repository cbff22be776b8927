package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sortlab/sorting"
	"github.com/katalvlaran/sortlab/trace"
)

// TestBubble_Example checks the worked example [5,3,8,1].
func TestBubble_Example(t *testing.T) {
	seq := []int{5, 3, 8, 1}
	m := sorting.Bubble(seq)
	assert.Equal(t, []int{1, 3, 5, 8}, seq)
	assert.Equal(t, 6, m.Comparisons)
	assert.Equal(t, 4, m.Swaps, "swaps equal the number of inversions")
	assert.LessOrEqual(t, m.Swaps, 6)
}

// TestBubble_ComparisonsIndependentOfOrder asserts n(n-1)/2 for several layouts.
func TestBubble_ComparisonsIndependentOfOrder(t *testing.T) {
	for _, seq := range [][]int{
		{1, 2, 3, 4, 5, 6},
		{6, 5, 4, 3, 2, 1},
		{3, 3, 3, 3, 3, 3},
		{2, 6, 1, 5, 3, 4},
	} {
		n := len(seq)
		m := sorting.Bubble(seq)
		assert.Equal(t, n*(n-1)/2, m.Comparisons, "input %v", seq)
	}
	assert.Equal(t, 0, sorting.Bubble([]int{1, 2, 3}).Swaps)
	assert.Equal(t, 3, sorting.Bubble([]int{3, 2, 1}).Swaps)
}

// TestSelection_AlwaysNMinusOneSwaps covers sorted, reversed and mixed input.
func TestSelection_AlwaysNMinusOneSwaps(t *testing.T) {
	for _, seq := range [][]int{
		{1, 2, 3, 4, 5},
		{5, 4, 3, 2, 1},
		{2, 2, 1, 1, 3},
		{9},
	} {
		n := len(seq)
		m := sorting.Selection(seq)
		assert.True(t, sorting.IsSorted(seq), "sorted %v", seq)
		assert.Equal(t, n-1, m.Swaps)
		assert.Equal(t, n*(n-1)/2, m.Comparisons)
	}
	assert.Equal(t, sorting.Metrics{}, sorting.Selection(nil))
}

// TestInsertion_BestAndWorstCase checks the adaptive counters.
func TestInsertion_BestAndWorstCase(t *testing.T) {
	sorted := []int{1, 2, 3, 4, 5, 6, 7}
	m := sorting.Insertion(sorted)
	assert.Equal(t, len(sorted)-1, m.Comparisons)
	assert.Equal(t, 0, m.Swaps)

	rev := []int{7, 6, 5, 4, 3, 2, 1}
	n := len(rev)
	m = sorting.Insertion(rev)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, rev)
	assert.Equal(t, n*(n-1)/2, m.Comparisons)
	assert.Equal(t, n*(n-1)/2, m.Swaps)
}

// TestElementary_TraceMatchesCounters ensures one event per counted step.
func TestElementary_TraceMatchesCounters(t *testing.T) {
	cases := []struct {
		name   string
		fn     func([]int, ...sorting.Option) sorting.Metrics
		moveK  trace.Kind
		passes bool
	}{
		{"bubble", sorting.Bubble, trace.Swap, true},
		{"selection", sorting.Selection, trace.Swap, false},
		{"insertion", sorting.Insertion, trace.Shift, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq := []int{4, -2, 9, 0, 4, 7, 1}
			c := trace.NewCollector()
			m := tc.fn(seq, sorting.WithTracer(c))
			assert.Equal(t, m.Comparisons, c.Count(trace.Compare))
			assert.Equal(t, m.Swaps, c.Count(tc.moveK))
			if tc.passes {
				assert.Equal(t, len(seq)-1, c.Count(trace.Pass))
			}
			for _, e := range c.Events() {
				assert.Equal(t, tc.name, e.Algorithm)
			}
		})
	}
}

// TestBubble_TraceFirstSteps pins the first events for a small input.
func TestBubble_TraceFirstSteps(t *testing.T) {
	c := trace.NewCollector()
	sorting.Bubble([]int{2, 1}, sorting.WithTracer(c))
	want := []trace.Event{
		{Algorithm: "bubble", Kind: trace.Pass, I: 1, Lo: 0, Hi: 1},
		{Algorithm: "bubble", Kind: trace.Compare, I: 0, J: 1, X: 2, Y: 1},
		{Algorithm: "bubble", Kind: trace.Swap, I: 0, J: 1, X: 2, Y: 1},
	}
	assert.Equal(t, want, c.Events())
}
