// Package plot renders scatter figures from tables.
package plot

import (
	"bytes"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/leengari/csvplot/internal/dataset"
)

// DefaultDPI matches the export resolution of the original dashboard.
const DefaultDPI = 144

// Figure is one rendered scatter plot. It is created fresh by Scatter and
// owned by the caller; encode it with WritePNG or PNG.
type Figure struct {
	chart chart.Chart
}

// Scatter builds a single-series scatter figure of column x against
// column y. Rows where either cell is missing or non-numeric are skipped.
// Both names must be columns of the table.
func Scatter(t *dataset.Table, xName, yName string, dpi int) (*Figure, error) {
	var missing []string
	xCol, ok := t.Column(xName)
	if !ok {
		missing = append(missing, xName)
	}
	yCol, ok := t.Column(yName)
	if !ok {
		missing = append(missing, yName)
	}
	if len(missing) > 0 {
		return nil, dataset.NewColumnNotFound(t.Name, missing...)
	}

	if dpi <= 0 {
		dpi = DefaultDPI
	}

	xs, ys := pairedValues(t, xCol, yCol)

	graph := chart.Chart{
		Title: fmt.Sprintf("Scatter: %s vs %s", xName, yName),
		DPI:   float64(dpi),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Name: xName, Range: axisRange(xs)},
		YAxis: chart.YAxis{Name: yName, Range: axisRange(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("%s vs %s", xName, yName),
				Style:   pointStyle(drawing.ColorBlue),
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return &Figure{chart: graph}, nil
}

// axisRange returns an explicit padded range when the values would give
// the axis a zero extent, which go-chart refuses to render. A single
// point, a constant column, or an all-missing pairing are all valid
// scatter inputs. Nil keeps automatic ranging.
func axisRange(values []float64) chart.Range {
	if len(values) == 0 {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo != hi {
		return nil
	}
	pad := math.Abs(lo) / 20
	if pad == 0 {
		pad = 0.5
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// pointStyle renders points only, no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

func pairedValues(t *dataset.Table, xCol, yCol *dataset.Column) ([]float64, []float64) {
	n := t.NumRows()
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x, ok := xCol.FloatAt(i)
		if !ok {
			continue
		}
		y, ok := yCol.FloatAt(i)
		if !ok {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

// Title returns the figure title.
func (f *Figure) Title() string {
	return f.chart.Title
}

// WritePNG encodes the figure as PNG into w.
func (f *Figure) WritePNG(w io.Writer) error {
	return f.chart.Render(chart.PNG, w)
}

// PNG encodes the figure as an in-memory PNG.
func (f *Figure) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.WritePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
