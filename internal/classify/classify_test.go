package classify_test

import (
	"errors"
	"testing"

	"github.com/leengari/csvplot/internal/classify"
	"github.com/leengari/csvplot/internal/dataset"
	"github.com/leengari/csvplot/internal/testutil"
)

// TestNumericColumns_Sample tests the fixed sample classification: the cat
// column is excluded and order is preserved
func TestNumericColumns_Sample(t *testing.T) {
	numeric, err := classify.NumericColumns(dataset.Sample())
	testutil.AssertNoError(t, err, "classify sample")
	testutil.AssertStringsEqual(t, numeric, []string{"x", "y", "z"}, "sample numeric columns")
}

// TestNumericColumns_PreservesOrder tests left-to-right ordering with text
// columns interleaved
func TestNumericColumns_PreservesOrder(t *testing.T) {
	table := dataset.NewTable("mixed", []dataset.Column{
		{Name: "label", Type: dataset.ColumnTypeText, Values: []any{"p"}},
		{Name: "b", Type: dataset.ColumnTypeFloat, Values: []any{1.0}},
		{Name: "flag", Type: dataset.ColumnTypeBool, Values: []any{true}},
		{Name: "a", Type: dataset.ColumnTypeInt, Values: []any{int64(1)}},
	})

	numeric, err := classify.NumericColumns(table)
	testutil.AssertNoError(t, err, "classify mixed")
	testutil.AssertStringsEqual(t, numeric, []string{"b", "a"}, "numeric order")
}

// TestNumericColumns_NoneFound tests the failure gate
func TestNumericColumns_NoneFound(t *testing.T) {
	_, err := classify.NumericColumns(testutil.TextOnlyTable())
	testutil.AssertError(t, err, "classify text-only table")
	if !errors.Is(err, dataset.ErrNoNumericColumns) {
		t.Errorf("expected ErrNoNumericColumns, got %v", err)
	}
}
