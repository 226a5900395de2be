package reorder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

func TestRepairCleanSequence(t *testing.T) {
	seq := makeRecords(1, 3, 5, 20, 21, 90)
	want := sampleIDs(seq)

	require.True(t, Repair(seq))
	require.Equal(t, want, sampleIDs(seq))
	require.False(t, HasResidualViolations(seq))
}

func TestRepairSingleViolation(t *testing.T) {
	seq := makeRecords(5, 6, 20)

	require.True(t, Repair(seq))
	require.Equal(t, []int{5, 20, 6}, sampleIDs(seq))
}

func TestRepairConsecutiveRun(t *testing.T) {
	// A full run of the end range is the worst case the pipeline produces
	// on ordered input; the budget must cover it.
	seq := makeRecords(60, 61, 62, 63, 64, 65, 66, 67, 68, 69)

	require.True(t, Repair(seq))
	require.Zero(t, CountViolations(seq))
	require.ElementsMatch(t, []int{60, 61, 62, 63, 64, 65, 66, 67, 68, 69}, sampleIDs(seq))
}

func TestRepairSmallMixedInputsConverge(t *testing.T) {
	inputs := [][]int{
		{1, 2, 3, 30},
		{70, 71, 72, 73, 40, 41},
		{60, 61, 5, 6, 70, 71, 20},
		{1, 2, 2, 3, 3, 90, 91},
		{14, 15, 15, 14, 62, 63, 80, 81, 81, 80, 25},
	}
	for _, ids := range inputs {
		seq := makeRecords(ids...)
		require.True(t, Repair(seq), "ids %v", ids)
		require.Zero(t, CountViolations(seq), "ids %v", ids)
		require.ElementsMatch(t, ids, sampleIDs(seq), "ids %v", ids)
	}
}

func TestRepairUnfixablePair(t *testing.T) {
	// No record to the right of the pair means no swap target exists.
	seq := makeRecords(5, 6)

	require.False(t, Repair(seq))
	require.True(t, HasResidualViolations(seq))
	require.Equal(t, []int{5, 6}, sampleIDs(seq))
}

func TestRepairNeverMakesThingsWorse(t *testing.T) {
	inputs := [][]int{
		{5, 6},
		{60, 61, 62, 63},
		{1, 2, 3, 4, 5},
	}
	for _, ids := range inputs {
		seq := makeRecords(ids...)
		Repair(seq)
		first := CountViolations(seq)
		Repair(seq)
		require.LessOrEqual(t, CountViolations(seq), first, "ids %v", ids)
	}
}

func TestRepairUnparseablePathsNeverViolate(t *testing.T) {
	// Malformed paths collide at id 0, which sits outside every flagged
	// range, so such records can be adjacent.
	seq := []core.EvaluationRecord{
		{Path: "bad/one.mp3"},
		{Path: "bad/two.mp3"},
		{Path: "clips/sample_5.wav"},
	}

	require.True(t, Repair(seq))
	require.Zero(t, CountViolations(seq))
}

func TestRepairEmptyAndSingle(t *testing.T) {
	require.True(t, Repair(nil))
	require.True(t, Repair(makeRecords(61)))
}
