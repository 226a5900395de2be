package reporter

import (
	"encoding/json"
	"io"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

type JSONReporter struct {
	Writer io.Writer
	Pretty bool
}

func (r JSONReporter) Report(review core.ReviewReport) error {
	encoder := json.NewEncoder(r.Writer)
	if r.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(review)
}
