package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSameProblematicRangeAdjacent(t *testing.T) {
	require.True(t, SameProblematicRangeAdjacent(5, 6))
	require.True(t, SameProblematicRangeAdjacent(6, 5))
	require.True(t, SameProblematicRangeAdjacent(70, 71))
	require.True(t, SameProblematicRangeAdjacent(60, 61))
	require.True(t, SameProblematicRangeAdjacent(69, 68))
}

func TestSameProblematicRangeAdjacentBoundaries(t *testing.T) {
	// Crossing a range boundary clears the pair even when the ids differ
	// by exactly one.
	require.False(t, SameProblematicRangeAdjacent(15, 16))
	require.False(t, SameProblematicRangeAdjacent(59, 60))
	require.False(t, SameProblematicRangeAdjacent(69, 70))
	require.False(t, SameProblematicRangeAdjacent(88, 89))
}

func TestSameProblematicRangeAdjacentOrdinary(t *testing.T) {
	// Ordinary ranges are never adjacency-sensitive.
	require.False(t, SameProblematicRangeAdjacent(20, 21))
	require.False(t, SameProblematicRangeAdjacent(90, 91))
}

func TestSameProblematicRangeAdjacentGap(t *testing.T) {
	require.False(t, SameProblematicRangeAdjacent(68, 70))
	require.False(t, SameProblematicRangeAdjacent(5, 5))
	require.False(t, SameProblematicRangeAdjacent(0, 1))
}
