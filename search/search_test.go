package search_test

import (
	"math/bits"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/search"
	"github.com/katalvlaran/sortlab/trace"
)

// TestSequential_Table covers hits, misses, duplicates and degenerate inputs.
func TestSequential_Table(t *testing.T) {
	cases := []struct {
		name      string
		seq       []int
		target    int
		wantIdx   int
		wantComps int
	}{
		{"empty", nil, 3, search.NotFound, 0},
		{"single hit", []int{7}, 7, 0, 1},
		{"single miss", []int{7}, 8, search.NotFound, 1},
		{"first", []int{4, 1, 9}, 4, 0, 1},
		{"last", []int{4, 1, 9}, 9, 2, 3},
		{"absent", []int{4, 1, 9}, 5, search.NotFound, 3},
		{"duplicates return lowest", []int{2, 5, 5, 5}, 5, 1, 2},
		{"negative values", []int{-3, -1, -7}, -7, 2, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := search.Sequential(tc.seq, tc.target)
			assert.Equal(t, tc.wantIdx, res.Index)
			assert.Equal(t, tc.wantComps, res.Comparisons)
			assert.Equal(t, tc.wantIdx != search.NotFound, res.Found())
		})
	}
}

// TestSequential_LowestIndexProperty compares against a naive scan on random data.
func TestSequential_LowestIndexProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		n := rng.Intn(30)
		seq := make([]int, n)
		for i := range seq {
			seq[i] = rng.Intn(10)
		}
		target := rng.Intn(12)

		want := search.NotFound
		for i, v := range seq {
			if v == target {
				want = i
				break
			}
		}
		assert.Equal(t, want, search.Sequential(seq, target).Index, "seq=%v target=%d", seq, target)
	}
}

// TestSequential_TraceOnePerComparison checks that trace volume matches the counter.
func TestSequential_TraceOnePerComparison(t *testing.T) {
	c := trace.NewCollector()
	res := search.Sequential([]int{3, 1, 4, 1, 5}, 4, search.WithTracer(c))
	require.Equal(t, 2, res.Index)
	require.Len(t, c.Events(), res.Comparisons)
	for i, e := range c.Events() {
		assert.Equal(t, trace.Compare, e.Kind)
		assert.Equal(t, search.NameSequential, e.Algorithm)
		assert.Equal(t, i, e.I)
		assert.Equal(t, 4, e.Y)
	}
}

// TestBinary_Examples covers the worked examples and degenerate inputs.
func TestBinary_Examples(t *testing.T) {
	seq := []int{1, 3, 5, 8}
	assert.Equal(t, 2, search.Binary(seq, 5).Index)
	assert.Equal(t, search.NotFound, search.Binary(seq, 9).Index)
	assert.Equal(t, search.NotFound, search.Binary(seq, 0).Index)
	assert.Equal(t, search.NotFound, search.Binary(seq, 4).Index)

	assert.Equal(t, search.NotFound, search.Binary(nil, 1).Index)
	assert.Equal(t, 0, search.Binary(nil, 1).Probes)
	assert.Equal(t, 0, search.Binary([]int{6}, 6).Index)
	assert.Equal(t, search.NotFound, search.Binary([]int{6}, 2).Index)
}

// TestBinary_SortedProperty checks hit/miss correctness and the probe bound.
func TestBinary_SortedProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 300; iter++ {
		n := rng.Intn(64)
		seq := make([]int, n)
		for i := range seq {
			seq[i] = rng.Intn(40) - 20
		}
		sort.Ints(seq)
		target := rng.Intn(44) - 22

		res := search.Binary(seq, target)
		present := false
		for _, v := range seq {
			if v == target {
				present = true
				break
			}
		}
		if present {
			require.True(t, res.Found(), "seq=%v target=%d", seq, target)
			assert.Equal(t, target, seq[res.Index])
		} else {
			assert.False(t, res.Found(), "seq=%v target=%d", seq, target)
		}

		maxProbes := 0
		if n > 0 {
			maxProbes = bits.Len(uint(n)) // ⌊log₂ n⌋ + 1
		}
		assert.LessOrEqual(t, res.Probes, maxProbes)
	}
}

// TestBinary_TraceProbes verifies probe events carry the search window.
func TestBinary_TraceProbes(t *testing.T) {
	c := trace.NewCollector()
	res := search.Binary([]int{1, 3, 5, 8, 13, 21, 34}, 34, search.WithTracer(c))
	require.Equal(t, 6, res.Index)
	require.Len(t, c.Events(), res.Probes)

	want := [][3]int{{0, 3, 6}, {4, 5, 6}, {6, 6, 6}}
	require.Len(t, c.Events(), len(want))
	for i, e := range c.Events() {
		assert.Equal(t, trace.Probe, e.Kind)
		assert.Equal(t, want[i], [3]int{e.Lo, e.Mid, e.Hi})
	}
}

// TestBinary_DuplicatesAnyIndex documents the "first matching midpoint" policy.
func TestBinary_DuplicatesAnyIndex(t *testing.T) {
	seq := []int{2, 2, 2, 2, 2}
	res := search.Binary(seq, 2)
	assert.Equal(t, 2, res.Index, "first probe hits the midpoint, not the lowest index")
	assert.Equal(t, 1, res.Probes)
}

// TestBinary_UnsortedDoesNotPanic documents the unchecked precondition.
func TestBinary_UnsortedDoesNotPanic(t *testing.T) {
	seq := []int{9, 1, 8, 2, 7}
	assert.NotPanics(t, func() {
		res := search.Binary(seq, 1)
		if res.Found() {
			assert.Equal(t, 1, seq[res.Index])
		}
	})
}

// TestWithTracerNil keeps the default tracer.
func TestWithTracerNil(t *testing.T) {
	o := search.DefaultOptions()
	search.WithTracer(nil)(&o)
	assert.True(t, trace.IsNop(o.Tracer))
}
