package dataset

type ColumnType string

const (
	ColumnTypeInt   ColumnType = "INT"
	ColumnTypeFloat ColumnType = "FLOAT"
	ColumnTypeText  ColumnType = "TEXT"
	ColumnTypeBool  ColumnType = "BOOL"
)

// Numeric reports whether values of this type can be placed on a plot axis.
func (ct ColumnType) Numeric() bool {
	return ct == ColumnTypeInt || ct == ColumnTypeFloat
}

// Column is one named column of a table. Values holds one entry per row:
// int64 for INT, float64 for FLOAT, string for TEXT, bool for BOOL,
// nil for a missing cell.
type Column struct {
	Name   string
	Type   ColumnType
	Values []any
}

// FloatAt returns the value at row i as a float64. The second return is
// false for missing cells and for non-numeric columns.
func (c *Column) FloatAt(i int) (float64, bool) {
	switch v := c.Values[i].(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
