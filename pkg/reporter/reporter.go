package reporter

import "github.com/C0deXG/model-evalV7/pkg/core"

// Reporter renders a review report.
type Reporter interface {
	Report(review core.ReviewReport) error
}

const (
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)
