// Package classify selects the plottable columns of a loaded table.
package classify

import (
	"github.com/leengari/csvplot/internal/dataset"
)

// NumericColumns returns the names of the table's INT and FLOAT columns,
// preserving the table's column order. It returns
// dataset.ErrNoNumericColumns when no column qualifies; this is the single
// validation gate before any plotting.
func NumericColumns(t *dataset.Table) ([]string, error) {
	var names []string
	for _, col := range t.Columns {
		if col.Type.Numeric() {
			names = append(names, col.Name)
		}
	}
	if len(names) == 0 {
		return nil, dataset.ErrNoNumericColumns
	}
	return names, nil
}
