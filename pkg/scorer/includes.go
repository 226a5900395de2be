package scorer

import (
	"strings"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

// Includes passes when the prediction contains the ground truth.
type Includes struct {
	CaseSensitive       bool
	NormalizeWhitespace bool
}

func (i Includes) Name() string {
	return "includes"
}

func (i Includes) Score(groundTruth, prediction string) core.Score {
	expected := normalizeText(groundTruth, i.CaseSensitive, i.NormalizeWhitespace)
	actual := normalizeText(prediction, i.CaseSensitive, i.NormalizeWhitespace)

	passed := strings.Contains(actual, expected)
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
