package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Load reads a table from a CSV file. An empty path selects the built-in
// sample table. CSV format errors from the parser propagate unmodified.
func Load(path string) (*Table, error) {
	if path == "" {
		slog.Debug("no input path, using sample table")
		return Sample(), nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InputNotFoundError{Path: path}
		}
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Parse(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded table", "name", t.Name, "columns", len(t.Columns), "rows", t.NumRows())
	return t, nil
}

// Parse reads CSV text from r into a table. The first record is the header
// row; column types are inferred from the remaining records.
func Parse(r io.Reader, name string) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty csv %q: missing header row", name)
	}

	header := records[0]
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		if seen[col] {
			return nil, fmt.Errorf("duplicate column %q in %q", col, name)
		}
		seen[col] = true
	}

	columns := make([]Column, len(header))
	for j, colName := range header {
		raw := make([]string, 0, len(records)-1)
		for _, rec := range records[1:] {
			raw = append(raw, rec[j])
		}
		columns[j] = inferColumn(colName, raw)
	}
	return NewTable(name, columns), nil
}
