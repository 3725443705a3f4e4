// Package runner is the headless execution path: one load, one column
// choice, one render, one file write. It never prompts.
package runner

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leengari/csvplot/internal/classify"
	"github.com/leengari/csvplot/internal/dataset"
	"github.com/leengari/csvplot/internal/plot"
)

type Options struct {
	CSVPath string // empty selects the sample table
	XColumn string
	YColumn string
	OutPath string
	DPI     int
}

// Headless runs the full pipeline and writes the PNG to opts.OutPath,
// creating missing parent directories. When either axis is unset, both
// default to the first two numeric columns in table order. Returns the
// output path on success.
func Headless(opts Options) (string, error) {
	table, err := dataset.Load(opts.CSVPath)
	if err != nil {
		return "", err
	}

	numeric, err := classify.NumericColumns(table)
	if err != nil {
		return "", err
	}

	x, y := opts.XColumn, opts.YColumn
	if x == "" || y == "" {
		x = numeric[0]
		y = numeric[0]
		if len(numeric) > 1 {
			y = numeric[1]
		}
	}
	slog.Info("rendering scatter", "table", table.Name, "x", x, "y", y)

	fig, err := plot.Scatter(table, x, y, opts.DPI)
	if err != nil {
		return "", err
	}

	// Encode fully in memory before touching the destination: a failed
	// invocation must not leave a partial artifact behind.
	png, err := fig.PNG()
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(opts.OutPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	if err := os.WriteFile(opts.OutPath, png, 0o644); err != nil {
		return "", err
	}
	return opts.OutPath, nil
}
