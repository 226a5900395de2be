package scorer

import "github.com/C0deXG/model-evalV7/pkg/core"

// DefaultCERThreshold is the character error rate at or below which a
// transcription counts as passing.
const DefaultCERThreshold = 0.15

// CER scores predictions by character error rate: Levenshtein distance over
// ground-truth length. Value is the character accuracy (1 - CER, floored at
// zero) so higher stays better, matching the other scorers.
type CER struct {
	CaseSensitive       bool
	NormalizeWhitespace bool
	Threshold           float64 // zero means DefaultCERThreshold
}

func (c CER) Name() string {
	return "cer"
}

func (c CER) Score(groundTruth, prediction string) core.Score {
	threshold := c.Threshold
	if threshold <= 0 {
		threshold = DefaultCERThreshold
	}

	expected := []rune(normalizeText(groundTruth, c.CaseSensitive, c.NormalizeWhitespace))
	actual := []rune(normalizeText(prediction, c.CaseSensitive, c.NormalizeWhitespace))

	if len(expected) == 0 {
		passed := len(actual) == 0
		value := 0.0
		if passed {
			value = 1
		}
		return core.Score{Value: value, Max: 1, Passed: passed}
	}

	rate := float64(levenshtein(expected, actual)) / float64(len(expected))
	accuracy := 1 - rate
	if accuracy < 0 {
		accuracy = 0
	}
	return core.Score{
		Value:  accuracy,
		Max:    1,
		Passed: rate <= threshold,
	}
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
