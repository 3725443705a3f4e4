package dataset

import (
	"fmt"
	"strconv"
)

// Table is an ordered set of named columns loaded from one source.
// Column order matches the input left-to-right. Tables are built once by
// the loader and not mutated afterwards.
type Table struct {
	Name    string
	Columns []Column

	index map[string]int
}

func NewTable(name string, columns []Column) *Table {
	t := &Table{
		Name:    name,
		Columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		t.index[col.Name] = i
	}
	return t
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return &t.Columns[i], true
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Head returns up to n rows formatted as strings, for previews.
// Missing cells format as the empty string.
func (t *Table) Head(n int) [][]string {
	if n > t.NumRows() {
		n = t.NumRows()
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(t.Columns))
		for j := range t.Columns {
			row[j] = formatCell(t.Columns[j].Values[i])
		}
		rows = append(rows, row)
	}
	return rows
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
