package dataset

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// inferColumn decides a column's type from its raw text cells and converts
// them. The rules are deliberately explicit rather than delegated to a
// parser:
//   - a cell is numeric when decimal.NewFromString accepts it
//   - INT: every non-empty cell is a plain integer literal
//   - FLOAT: every non-empty cell is numeric and at least one carries a
//     decimal point or exponent
//   - BOOL: every non-empty cell is true/false (any case)
//   - TEXT: everything else, including all-empty columns
//
// Empty cells do not participate in inference and load as nil.
func inferColumn(name string, raw []string) Column {
	allInt, allNumeric, allBool := true, true, true
	nonEmpty := 0

	for _, cell := range raw {
		s := strings.TrimSpace(cell)
		if s == "" {
			continue
		}
		nonEmpty++

		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			allInt = false
		}
		if _, err := decimal.NewFromString(s); err != nil {
			allNumeric = false
			allInt = false
		}

		if !strings.EqualFold(s, "true") && !strings.EqualFold(s, "false") {
			allBool = false
		}
	}

	typ := ColumnTypeText
	switch {
	case nonEmpty == 0:
		typ = ColumnTypeText
	case allBool:
		typ = ColumnTypeBool
	case allInt:
		typ = ColumnTypeInt
	case allNumeric:
		typ = ColumnTypeFloat
	}

	values := make([]any, len(raw))
	for i, cell := range raw {
		s := strings.TrimSpace(cell)
		if s == "" {
			values[i] = nil
			continue
		}
		switch typ {
		case ColumnTypeInt:
			n, _ := strconv.ParseInt(s, 10, 64)
			values[i] = n
		case ColumnTypeFloat:
			d, _ := decimal.NewFromString(s)
			values[i] = d.InexactFloat64()
		case ColumnTypeBool:
			values[i] = strings.EqualFold(s, "true")
		default:
			values[i] = cell
		}
	}

	return Column{Name: name, Type: typ, Values: values}
}
