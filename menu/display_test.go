package menu_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sortlab/menu"
	"github.com/katalvlaran/sortlab/sorting"
)

func TestDisplay(t *testing.T) {
	seq := make([]int, 25)
	for i := range seq {
		seq[i] = i + 1
	}
	cases := []struct {
		name  string
		seq   []int
		limit int
		want  string
	}{
		{"Empty", nil, 10, "Array (n=0):\n  (empty)\n"},
		{"Short", []int{5, 3, 8, 1}, 10, "Array (n=4):\n  5 3 8 1\n"},
		{
			"WrapsAndElides", seq, 22,
			"Array (n=25):\n" +
				"  1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20\n" +
				"  21 22\n" +
				"  ... (3 more)\n",
		},
		{
			"NoLimit", seq[:21], 0,
			"Array (n=21):\n" +
				"  1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19 20\n" +
				"  21\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			menu.Display(&buf, tc.seq, tc.limit)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestComplexityTable(t *testing.T) {
	var buf bytes.Buffer
	menu.ComplexityTable(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1+len(sorting.Methods()))
	assert.Contains(t, lines[0], "Method")
	assert.Contains(t, lines[0], "In place")
	for i, m := range sorting.Methods() {
		assert.Contains(t, lines[i+1], m.Info().Name)
		assert.Contains(t, lines[i+1], m.Info().Worst)
	}
}
