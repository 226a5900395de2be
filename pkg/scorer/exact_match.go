// Package scorer provides match hints shown next to review cards: quick
// comparisons of a prediction against its ground truth.
package scorer

import "github.com/C0deXG/model-evalV7/pkg/core"

// ExactMatch scores predictions by exact string match.
type ExactMatch struct {
	CaseSensitive       bool
	NormalizeWhitespace bool
}

func (e ExactMatch) Name() string {
	return "exact"
}

func (e ExactMatch) Score(groundTruth, prediction string) core.Score {
	expected := normalizeText(groundTruth, e.CaseSensitive, e.NormalizeWhitespace)
	actual := normalizeText(prediction, e.CaseSensitive, e.NormalizeWhitespace)

	passed := expected == actual
	value := 0.0
	if passed {
		value = 1
	}
	return core.Score{
		Value:  value,
		Max:    1,
		Passed: passed,
	}
}
