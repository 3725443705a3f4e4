// Package selftest holds the built-in regression checks behind --test.
// Checks are an explicit enumerated list, run in order.
package selftest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/leengari/csvplot/internal/classify"
	"github.com/leengari/csvplot/internal/dataset"
	"github.com/leengari/csvplot/internal/plot"
	"github.com/leengari/csvplot/internal/runner"
)

type check struct {
	name string
	fn   func() error
}

var checks = []check{
	{"sample numeric columns are x, y, z", checkSampleClassification},
	{"scatter render returns a figure", checkScatterFigure},
	{"headless run writes a png", checkHeadlessWritesPNG},
	{"missing column is named in the error", checkMissingColumnNamed},
	{"all-text table is rejected", checkNoNumericColumns},
	{"missing input path is rejected", checkMissingInput},
	{"repeated run overwrites cleanly", checkOverwrite},
}

// Run executes every check and writes a report to w. It returns an error
// when any check fails.
func Run(w io.Writer) error {
	fmt.Fprintln(w, "Sample preview:")
	dataset.WriteHead(w, dataset.Sample(), 5)
	fmt.Fprintln(w)

	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	failed := 0
	for _, c := range checks {
		if err := c.fn(); err != nil {
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", fail("FAIL"), c.name, err)
			continue
		}
		fmt.Fprintf(w, "%s %s\n", pass("ok"), c.name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Fprintf(w, "\n%d checks passed\n", len(checks))
	return nil
}

func checkSampleClassification() error {
	numeric, err := classify.NumericColumns(dataset.Sample())
	if err != nil {
		return err
	}
	want := []string{"x", "y", "z"}
	if len(numeric) != len(want) {
		return fmt.Errorf("expected %v, got %v", want, numeric)
	}
	for i := range want {
		if numeric[i] != want[i] {
			return fmt.Errorf("expected %v, got %v", want, numeric)
		}
	}
	return nil
}

func checkScatterFigure() error {
	fig, err := plot.Scatter(dataset.Sample(), "x", "y", plot.DefaultDPI)
	if err != nil {
		return err
	}
	if fig == nil {
		return errors.New("nil figure")
	}
	if fig.Title() != "Scatter: x vs y" {
		return fmt.Errorf("unexpected title %q", fig.Title())
	}
	return nil
}

func checkHeadlessWritesPNG() error {
	dir, err := os.MkdirTemp("", "csvplot-selftest")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, "nested", "out.png")
	written, err := runner.Headless(runner.Options{OutPath: out})
	if err != nil {
		return err
	}
	info, err := os.Stat(written)
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return errors.New("output file is empty")
	}
	return nil
}

func checkMissingColumnNamed() error {
	_, err := plot.Scatter(dataset.Sample(), "x", "nope", plot.DefaultDPI)
	var cnf *dataset.ColumnNotFoundError
	if !errors.As(err, &cnf) {
		return fmt.Errorf("expected ColumnNotFoundError, got %v", err)
	}
	if !strings.Contains(cnf.Error(), "nope") {
		return fmt.Errorf("error does not name the column: %v", cnf)
	}
	return nil
}

func checkNoNumericColumns() error {
	table := dataset.NewTable("labels", []dataset.Column{
		{Name: "name", Type: dataset.ColumnTypeText, Values: []any{"a", "b"}},
	})
	_, err := classify.NumericColumns(table)
	if !errors.Is(err, dataset.ErrNoNumericColumns) {
		return fmt.Errorf("expected ErrNoNumericColumns, got %v", err)
	}
	return nil
}

func checkMissingInput() error {
	_, err := runner.Headless(runner.Options{
		CSVPath: filepath.Join(os.TempDir(), "csvplot-does-not-exist.csv"),
		OutPath: filepath.Join(os.TempDir(), "csvplot-never-written.png"),
	})
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("expected a not-found error, got %v", err)
	}
	return nil
}

func checkOverwrite() error {
	dir, err := os.MkdirTemp("", "csvplot-selftest")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, "out.png")
	for i := 0; i < 2; i++ {
		if _, err := runner.Headless(runner.Options{OutPath: out}); err != nil {
			return fmt.Errorf("run %d: %w", i+1, err)
		}
		info, err := os.Stat(out)
		if err != nil {
			return err
		}
		if info.Size() == 0 {
			return fmt.Errorf("run %d: output file is empty", i+1)
		}
	}
	return nil
}
