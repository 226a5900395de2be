package core

// Sample ids are grouped into closed intervals with fixed placement roles:
//
//	[1,15]   prioritized, mixed to the front
//	[70,88]  prioritized, mixed to the front
//	[16,59]  ordinary, kept mid-sequence in original order
//	[89,∞)   ordinary, appended after [16,59]
//	[60,69]  placed at the very end
//
// Only the prioritized and end ranges are adjacency-sensitive; consecutive
// ids inside the ordinary ranges are fine next to each other.
type sampleRange struct {
	lo, hi int
}

func (r sampleRange) contains(id int) bool {
	return id >= r.lo && id <= r.hi
}

var adjacencySensitive = []sampleRange{
	{lo: 1, hi: 15},
	{lo: 70, hi: 88},
	{lo: 60, hi: 69},
}

// SameProblematicRangeAdjacent reports whether two sample ids would form an
// adjacency violation if shown next to each other: the ids differ by exactly
// one and both fall inside the same adjacency-sensitive range. Ids that
// differ by one but straddle a range boundary, or sit in an ordinary range,
// are never flagged.
func SameProblematicRangeAdjacent(a, b int) bool {
	d := a - b
	if d != 1 && d != -1 {
		return false
	}
	for _, r := range adjacencySensitive {
		if r.contains(a) && r.contains(b) {
			return true
		}
	}
	return false
}
