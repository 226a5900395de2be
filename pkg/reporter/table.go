package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

const cellLimit = 60

type TableReporter struct {
	Writer io.Writer
	Color  bool
}

func (r TableReporter) Report(review core.ReviewReport) error {
	labelStyle := lipgloss.NewStyle().Bold(true)
	passStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	fmt.Fprintf(r.Writer, "Dataset: %s  Session: %s  Seed: %d\n", review.Dataset, review.SessionID, review.Seed)
	if !review.Converged {
		warning := "warning: adjacency repair did not converge; some samples may sit next to a same-range neighbor"
		if r.Color {
			warning = warnStyle.Render(warning)
		}
		fmt.Fprintln(r.Writer, warning)
	}

	scored := review.ScorerName != ""
	for _, pg := range review.Pages {
		label := fmt.Sprintf("Page %d/%d  %s", pg.Index+1, pg.TotalPages, pg.RangeLabel)
		if r.Color {
			label = labelStyle.Render(label)
		}
		fmt.Fprintf(r.Writer, "\n%s\n", label)

		table := tablewriter.NewWriter(r.Writer)
		header := []string{"#", "Sample", "Ground truth", "Prediction"}
		if scored {
			header = append(header, "Match")
		}
		table.Header(header)

		for _, item := range pg.Items {
			row := []string{
				fmt.Sprintf("%d", item.Number),
				item.Record.Path,
				truncate(item.Record.GroundTruth, cellLimit),
				truncate(item.Record.Prediction, cellLimit),
			}
			if scored {
				row = append(row, renderScore(item.Score, r.Color, passStyle, failStyle))
			}
			table.Append(row)
		}
		table.Render()
	}
	return nil
}

func renderScore(score *core.Score, color bool, pass, fail lipgloss.Style) string {
	if score == nil {
		return ""
	}
	text := fmt.Sprintf("%.2f", score.Value)
	if score.Passed {
		text = "pass " + text
		if color {
			return pass.Render(text)
		}
		return text
	}
	text = "fail " + text
	if color {
		return fail.Render(text)
	}
	return text
}

func truncate(input string, limit int) string {
	runes := []rune(input)
	if len(runes) <= limit {
		return input
	}
	return string(runes[:limit-1]) + "…"
}

// IsTerminal reports whether w is an interactive terminal, which enables
// colored table output.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
