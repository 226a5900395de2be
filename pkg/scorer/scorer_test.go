package scorer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExactMatch(t *testing.T) {
	sc := ExactMatch{CaseSensitive: false, NormalizeWhitespace: true}

	score := sc.Score("Hello World", "  hello   world  ")
	require.True(t, score.Passed)
	require.Equal(t, 1.0, score.Value)

	score = sc.Score("Hello World", "goodbye")
	require.False(t, score.Passed)
	require.Equal(t, 0.0, score.Value)
}

func TestIncludes(t *testing.T) {
	sc := Includes{CaseSensitive: false, NormalizeWhitespace: true}

	score := sc.Score("world", "Hello World")
	require.True(t, score.Passed)

	score = sc.Score("mars", "Hello World")
	require.False(t, score.Passed)
}

func TestCERIdentical(t *testing.T) {
	sc := CER{NormalizeWhitespace: true}

	score := sc.Score("the quick brown fox", "the quick brown fox")
	require.True(t, score.Passed)
	require.Equal(t, 1.0, score.Value)
}

func TestCERSmallEdit(t *testing.T) {
	sc := CER{NormalizeWhitespace: true}

	// One substitution over twenty characters stays under the default
	// threshold.
	score := sc.Score("the quick brown fox!", "the quick brown fox?")
	require.True(t, score.Passed)
	require.InDelta(t, 0.95, score.Value, 1e-9)
}

func TestCERDivergent(t *testing.T) {
	sc := CER{}

	score := sc.Score("short", "a completely different transcription")
	require.False(t, score.Passed)
	require.Equal(t, 0.0, score.Value)
}

func TestCEREmptyGroundTruth(t *testing.T) {
	sc := CER{}

	require.True(t, sc.Score("", "").Passed)
	require.False(t, sc.Score("", "noise").Passed)
}

func TestLevenshtein(t *testing.T) {
	require.Equal(t, 3, levenshtein([]rune("kitten"), []rune("sitting")))
	require.Equal(t, 0, levenshtein([]rune("same"), []rune("same")))
	require.Equal(t, 4, levenshtein([]rune(""), []rune("four")))
}
