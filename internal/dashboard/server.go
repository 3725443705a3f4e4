// Package dashboard is the interactive front end: a local web page for
// uploading a CSV, previewing it, picking axis columns and exporting the
// scatter plot. The core pipeline does not depend on this package; when
// the dashboard cannot come up the dispatcher falls back to headless mode.
package dashboard

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"github.com/leengari/csvplot/internal/classify"
	"github.com/leengari/csvplot/internal/dataset"
	"github.com/leengari/csvplot/internal/plot"
)

// maxUploadBytes caps CSV uploads at 32 MiB.
const maxUploadBytes = 32 << 20

type Server struct {
	dpi         int
	previewRows int

	ln net.Listener

	mu    sync.Mutex
	table *dataset.Table
}

func New(dpi, previewRows int) *Server {
	if dpi <= 0 {
		dpi = plot.DefaultDPI
	}
	if previewRows <= 0 {
		previewRows = 5
	}
	return &Server{dpi: dpi, previewRows: previewRows}
}

// Bind claims the listen address. A failure here means the interactive
// front end is unavailable; callers treat that as "run headless", not as
// a fatal error.
func (s *Server) Bind(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address. Only valid after Bind.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Serve runs the dashboard on the listener claimed by Bind. It blocks for
// the life of the process.
func (s *Server) Serve() error {
	slog.Info("dashboard running", "addr", s.Addr())
	return http.Serve(s.ln, s.Handler())
}

// Handler builds the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("POST /sample", s.handleSample)
	mux.HandleFunc("GET /plot.png", s.handlePlot)
	mux.HandleFunc("GET /download", s.handleDownload)
	return withRequestID(mux)
}

// withRequestID tags each request with a uuid in the logs.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("request",
			"id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
		)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) setTable(t *dataset.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = t
}

func (s *Server) currentTable() *dataset.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{PreviewRows: s.previewRows}

	table := s.currentTable()
	if table != nil {
		data.HasTable = true
		data.TableName = table.Name
		data.Header = table.ColumnNames()
		data.Preview = table.Head(s.previewRows)

		numeric, err := classify.NumericColumns(table)
		if err != nil {
			// Soft stop: the user may upload different data.
			data.Warning = err.Error()
		} else {
			data.Numeric = numeric
			data.X = chooseColumn(r.URL.Query().Get("x"), numeric)
			data.YOptions = excludeColumn(numeric, data.X)
			data.Y = chooseColumn(r.URL.Query().Get("y"), data.YOptions)

			q := url.Values{}
			q.Set("x", data.X)
			q.Set("y", data.Y)
			data.PlotURL = "/plot.png?" + q.Encode()
			data.DownloadURL = "/download?" + q.Encode()
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		slog.Error("render index", "error", err)
	}
}

// chooseColumn keeps the requested name when it is an option, otherwise
// falls back to the first option.
func chooseColumn(requested string, options []string) string {
	for _, opt := range options {
		if opt == requested {
			return requested
		}
	}
	return options[0]
}

// excludeColumn drops name from the list; when that would empty it, the
// full list is offered again.
func excludeColumn(names []string, name string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return names
	}
	return out
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("csv")
	if err != nil {
		http.Error(w, fmt.Sprintf("upload failed: %v", err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	table, err := dataset.Parse(file, header.Filename)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not parse %s: %v", header.Filename, err), http.StatusBadRequest)
		return
	}

	slog.Info("csv uploaded", "name", table.Name, "columns", len(table.Columns), "rows", table.NumRows())
	s.setTable(table)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	s.setTable(dataset.Sample())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) renderFigure(r *http.Request) (*plot.Figure, error) {
	table := s.currentTable()
	if table == nil {
		return nil, fmt.Errorf("no dataset loaded")
	}
	return plot.Scatter(table, r.URL.Query().Get("x"), r.URL.Query().Get("y"), s.dpi)
}

func (s *Server) handlePlot(w http.ResponseWriter, r *http.Request) {
	fig, err := s.renderFigure(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := fig.WritePNG(w); err != nil {
		slog.Error("render plot", "error", err)
	}
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	fig, err := s.renderFigure(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	png, err := fig.PNG()
	if err != nil {
		slog.Error("encode plot", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	name := fmt.Sprintf("scatter_%s_vs_%s.png", r.URL.Query().Get("x"), r.URL.Query().Get("y"))
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(png)
}
