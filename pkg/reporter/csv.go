package reporter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(review core.ReviewReport) error {
	writer := csv.NewWriter(r.Writer)
	header := []string{"number", "page", "sample_id", "path", "ground_truth", "prediction", "score", "passed"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, pg := range review.Pages {
		for _, item := range pg.Items {
			scoreValue := ""
			passed := ""
			if item.Score != nil {
				scoreValue = strconv.FormatFloat(item.Score.Value, 'f', 4, 64)
				passed = strconv.FormatBool(item.Score.Passed)
			}
			record := []string{
				strconv.Itoa(item.Number),
				strconv.Itoa(pg.Index),
				strconv.Itoa(item.Record.SampleID()),
				item.Record.Path,
				item.Record.GroundTruth,
				item.Record.Prediction,
				scoreValue,
				passed,
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}
