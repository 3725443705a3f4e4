package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrNoNumericColumns is returned when a table has no column that could be
// placed on a plot axis.
var ErrNoNumericColumns = errors.New("no numeric columns found in the dataset")

// InputNotFoundError reports a dataset path that does not exist.
// It matches fs.ErrNotExist under errors.Is.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("csv not found: %s", e.Path)
}

func (e *InputNotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// ColumnNotFoundError reports axis names that are not columns of the table.
type ColumnNotFoundError struct {
	Table   string
	Columns []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column(s) not found in %s: %s", e.Table, strings.Join(e.Columns, ", "))
}

func NewColumnNotFound(table string, columns ...string) *ColumnNotFoundError {
	return &ColumnNotFoundError{Table: table, Columns: columns}
}
