package dataset

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteHead prints the first n rows as an aligned text table, with a
// header row of "name (TYPE)" cells.
func WriteHead(w io.Writer, t *Table, n int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for i, col := range t.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprintf(tw, "%s (%s)", col.Name, col.Type)
	}
	fmt.Fprintln(tw)

	for _, row := range t.Head(n) {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}

	tw.Flush()
}
