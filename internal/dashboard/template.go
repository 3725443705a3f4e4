package dashboard

import "html/template"

type pageData struct {
	HasTable    bool
	TableName   string
	Header      []string
	Preview     [][]string
	PreviewRows int

	Warning string

	Numeric     []string
	X, Y        string
	YOptions    []string
	PlotURL     string
	DownloadURL string
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<title>CSV Scatter Dashboard</title>
<style>
body { font-family: sans-serif; margin: 2em; max-width: 64em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
.info { color: #555; }
.warning { color: #a40; font-weight: bold; }
form { display: inline-block; margin-right: 1em; }
img { max-width: 100%; border: 1px solid #eee; }
</style>
</head>
<body>
<h1>CSV Scatter Dashboard</h1>
<p>Upload a CSV, pick numeric columns, and download the plot.</p>

<form method="post" action="/upload" enctype="multipart/form-data">
<input type="file" name="csv" accept=".csv,text/csv">
<button type="submit">Upload</button>
</form>
<form method="post" action="/sample">
<button type="submit">Use sample data</button>
</form>

{{if not .HasTable}}
<p class="info">Upload a CSV to proceed. Or try the built-in sample.</p>
{{else}}
<h2>Data Preview</h2>
<p class="info">{{.TableName}} &mdash; first {{.PreviewRows}} rows</p>
<table>
<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
{{range .Preview}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
</table>

{{if .Warning}}
<p class="warning">{{.Warning}}</p>
{{else}}
<form method="get" action="/">
<label>X-axis <select name="x">
{{range .Numeric}}<option{{if eq . $.X}} selected{{end}}>{{.}}</option>{{end}}
</select></label>
<label>Y-axis <select name="y">
{{range .YOptions}}<option{{if eq . $.Y}} selected{{end}}>{{.}}</option>{{end}}
</select></label>
<button type="submit">Plot</button>
</form>

<p><img src="{{.PlotURL}}" alt="Scatter: {{.X}} vs {{.Y}}"></p>
<p><a href="{{.DownloadURL}}">Download plot as PNG</a></p>
{{end}}
{{end}}
</body>
</html>
`))
