package reporter

import (
	"fmt"
	"io"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(review core.ReviewReport) error {
	if _, err := fmt.Fprintf(r.Writer, "# Review Order\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "- Dataset: %s\n- Session: %s\n- Seed: %d\n- Samples: %d\n- Converged: %t\n\n",
		review.Dataset, review.SessionID, review.Seed, review.TotalItems, review.Converged); err != nil {
		return err
	}

	scored := review.ScorerName != ""
	for _, pg := range review.Pages {
		if _, err := fmt.Fprintf(r.Writer, "## Page %d/%d (%s)\n\n", pg.Index+1, pg.TotalPages, pg.RangeLabel); err != nil {
			return err
		}
		header := "| # | Sample | Ground truth | Prediction |"
		rule := "|---|---|---|---|"
		if scored {
			header = "| # | Sample | Ground truth | Prediction | Match |"
			rule = "|---|---|---|---|---|"
		}
		if _, err := fmt.Fprintf(r.Writer, "%s\n%s\n", header, rule); err != nil {
			return err
		}
		for _, item := range pg.Items {
			if scored {
				match := ""
				if item.Score != nil {
					match = fmt.Sprintf("%.2f", item.Score.Value)
					if item.Score.Passed {
						match += " ✓"
					}
				}
				if _, err := fmt.Fprintf(r.Writer, "| %d | %s | %s | %s | %s |\n",
					item.Number,
					escapePipe(item.Record.Path),
					escapePipe(item.Record.GroundTruth),
					escapePipe(item.Record.Prediction),
					match,
				); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(r.Writer, "| %d | %s | %s | %s |\n",
				item.Number,
				escapePipe(item.Record.Path),
				escapePipe(item.Record.GroundTruth),
				escapePipe(item.Record.Prediction),
			); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.Writer); err != nil {
			return err
		}
	}
	return nil
}

func escapePipe(input string) string {
	if input == "" {
		return ""
	}
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if r == '|' {
			out = append(out, '\\', r)
		} else if r == '\n' || r == '\r' {
			out = append(out, ' ')
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
