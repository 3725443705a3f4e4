package testutil

import (
	"github.com/leengari/csvplot/internal/dataset"
)

// TextOnlyTable creates a table with no numeric columns
func TextOnlyTable() *dataset.Table {
	return dataset.NewTable("labels", []dataset.Column{
		{Name: "name", Type: dataset.ColumnTypeText, Values: []any{"alice", "bob"}},
		{Name: "team", Type: dataset.ColumnTypeText, Values: []any{"red", "blue"}},
	})
}

// GappyTable creates a table whose numeric columns contain missing cells
func GappyTable() *dataset.Table {
	return dataset.NewTable("gappy", []dataset.Column{
		{Name: "a", Type: dataset.ColumnTypeInt, Values: []any{int64(1), nil, int64(3)}},
		{Name: "b", Type: dataset.ColumnTypeFloat, Values: []any{1.5, 2.5, nil}},
		{Name: "label", Type: dataset.ColumnTypeText, Values: []any{"p", "q", "r"}},
	})
}
