package reporter

import (
	"html/template"
	"io"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

type HTMLReporter struct {
	Writer io.Writer
	Title  string
}

func (r HTMLReporter) Report(review core.ReviewReport) error {
	title := r.Title
	if title == "" {
		title = "Review Order"
	}

	data := struct {
		Title  string
		Review core.ReviewReport
	}{
		Title:  title,
		Review: review,
	}

	tpl := template.Must(template.New("review").Parse(htmlTemplate))
	return tpl.Execute(r.Writer, data)
}

const htmlTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 24px; }
    table { border-collapse: collapse; width: 100%; margin-top: 16px; }
    th, td { border: 1px solid #ddd; padding: 8px; }
    th { background: #f5f5f5; text-align: left; }
    .meta { margin-bottom: 12px; }
    .warn { color: #b45309; }
    .pass { color: #15803d; }
    .fail { color: #b91c1c; }
  </style>
</head>
<body>
  <h1>{{ .Title }}</h1>
  <div class="meta">
    <div><strong>Dataset:</strong> {{ .Review.Dataset }}</div>
    <div><strong>Session:</strong> {{ .Review.SessionID }}</div>
    <div><strong>Seed:</strong> {{ .Review.Seed }}</div>
    <div><strong>Samples:</strong> {{ .Review.TotalItems }}</div>
  </div>
  {{ if not .Review.Converged }}
  <p class="warn">Adjacency repair did not converge; some samples may sit next to a same-range neighbor.</p>
  {{ end }}
  {{ range .Review.Pages }}
  <h2>Page {{ .Index }} ({{ .RangeLabel }})</h2>
  <table>
    <tr><th>#</th><th>Sample</th><th>Ground truth</th><th>Prediction</th>{{ if $.Review.ScorerName }}<th>Match</th>{{ end }}</tr>
    {{ range .Items }}
    <tr>
      <td>{{ .Number }}</td>
      <td>{{ .Record.Path }}</td>
      <td>{{ .Record.GroundTruth }}</td>
      <td>{{ .Record.Prediction }}</td>
      {{ if $.Review.ScorerName }}
      <td>{{ if .Score }}{{ if .Score.Passed }}<span class="pass">{{ printf "%.2f" .Score.Value }}</span>{{ else }}<span class="fail">{{ printf "%.2f" .Score.Value }}</span>{{ end }}{{ end }}</td>
      {{ end }}
    </tr>
    {{ end }}
  </table>
  {{ end }}
</body>
</html>
`
