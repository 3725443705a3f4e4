package dataset

// Sample returns the built-in demo table. Its content is fixed: default
// behavior and the regression checks both depend on it.
func Sample() *Table {
	return NewTable("sample", []Column{
		{Name: "x", Type: ColumnTypeInt, Values: []any{int64(1), int64(2), int64(3), int64(4), int64(5)}},
		{Name: "y", Type: ColumnTypeInt, Values: []any{int64(2), int64(1), int64(3), int64(5), int64(4)}},
		{Name: "z", Type: ColumnTypeFloat, Values: []any{10.0, 11.5, 9.0, 12.0, 10.5}},
		{Name: "cat", Type: ColumnTypeText, Values: []any{"a", "a", "b", "b", "a"}},
	})
}
