package dataset_test

import (
	"strings"
	"testing"

	"github.com/leengari/csvplot/internal/dataset"
)

func parse(t *testing.T, csvText string) *dataset.Table {
	t.Helper()
	table, err := dataset.Parse(strings.NewReader(csvText), "test.csv")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return table
}

// TestInference_ColumnTypes tests the per-column type rules
func TestInference_ColumnTypes(t *testing.T) {
	table := parse(t, strings.Join([]string{
		"i,f,t,b,mixed",
		"1,1.5,hello,true,1",
		"-2,2,world,FALSE,x",
		"300,-0.25,,True,2",
		"",
	}, "\n"))

	cases := []struct {
		column string
		want   dataset.ColumnType
	}{
		{"i", dataset.ColumnTypeInt},
		{"f", dataset.ColumnTypeFloat},
		{"t", dataset.ColumnTypeText},
		{"b", dataset.ColumnTypeBool},
		{"mixed", dataset.ColumnTypeText},
	}
	for _, c := range cases {
		col, ok := table.Column(c.column)
		if !ok {
			t.Fatalf("column %q missing", c.column)
		}
		if col.Type != c.want {
			t.Errorf("column %q: expected %s, got %s", c.column, c.want, col.Type)
		}
	}
}

// TestInference_ScientificNotation tests that exponent literals count as
// numeric but not as integers
func TestInference_ScientificNotation(t *testing.T) {
	table := parse(t, "v\n1e3\n2e3\n")

	col, _ := table.Column("v")
	if col.Type != dataset.ColumnTypeFloat {
		t.Fatalf("expected FLOAT, got %s", col.Type)
	}
	if col.Values[0] != 1000.0 {
		t.Errorf("expected 1000, got %v", col.Values[0])
	}
}

// TestInference_MissingCells tests that empty cells are ignored for
// inference and load as nil
func TestInference_MissingCells(t *testing.T) {
	table := parse(t, "v,w\n1,\n,hello\n3,world\n")

	vCol, _ := table.Column("v")
	if vCol.Type != dataset.ColumnTypeInt {
		t.Errorf("expected v to stay INT with gaps, got %s", vCol.Type)
	}
	if vCol.Values[1] != nil {
		t.Errorf("expected nil for missing cell, got %v", vCol.Values[1])
	}
	if _, ok := vCol.FloatAt(1); ok {
		t.Error("expected FloatAt to report missing cell")
	}
	if f, ok := vCol.FloatAt(2); !ok || f != 3 {
		t.Errorf("expected 3, got %v (%v)", f, ok)
	}
}

// TestInference_AllEmptyColumn tests the all-empty fallback
func TestInference_AllEmptyColumn(t *testing.T) {
	table := parse(t, "v,w\n,1\n,2\n")

	vCol, _ := table.Column("v")
	if vCol.Type != dataset.ColumnTypeText {
		t.Errorf("expected all-empty column to be TEXT, got %s", vCol.Type)
	}
}

// TestInference_IntegerFloats tests that "1.0" style cells make a FLOAT
// column, not INT
func TestInference_IntegerFloats(t *testing.T) {
	table := parse(t, "v\n1.0\n2.5\n")

	col, _ := table.Column("v")
	if col.Type != dataset.ColumnTypeFloat {
		t.Errorf("expected FLOAT, got %s", col.Type)
	}
	if col.Values[0] != 1.0 || col.Values[1] != 2.5 {
		t.Errorf("unexpected values: %v", col.Values)
	}
}
