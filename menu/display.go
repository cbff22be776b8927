package menu

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/sortlab/sorting"
)

// perLine is how many elements Display prints on one row.
const perLine = 20

// Display prints seq on w, perLine values per row. When limit > 0 and seq is
// longer, only the first limit values are shown followed by a count of the
// elided ones. The sequence is only read.
func Display(w io.Writer, seq []int, limit int) {
	fmt.Fprintf(w, "Array (n=%d):\n", len(seq))
	if len(seq) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	shown := seq
	if limit > 0 && len(seq) > limit {
		shown = seq[:limit]
	}

	var b strings.Builder
	for i, v := range shown {
		if i%perLine == 0 {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(" ")
		}
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('\n')
	if rest := len(seq) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "  ... (%d more)\n", rest)
	}
	io.WriteString(w, b.String())
}

// ComplexityTable prints one row per sort method.
func ComplexityTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tMethod\tBest\tAverage\tWorst\tSpace\tStable\tIn place")
	for _, m := range sorting.Methods() {
		info := m.Info()
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			int(m), info.Name, info.Best, info.Average, info.Worst, info.Space,
			yesNo(info.Stable), yesNo(info.InPlace))
	}
	tw.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
