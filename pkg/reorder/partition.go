package reorder

import "github.com/C0deXG/model-evalV7/pkg/core"

// Partition boundaries over original positions (0-based). Membership is by
// position in the loaded sequence, not by the record's embedded sample id;
// the repair pass checks id-based ranges instead. The mismatch is intentional
// and must not be unified.
const (
	frontEnd      = 15
	ordinaryEnd   = 59
	tailEnd       = 69
	priorityStart = 69
	priorityEnd   = 88
)

// Groups holds the four positional buckets the reorder pipeline works with.
type Groups struct {
	Front    []core.EvaluationRecord // positions [0,15)
	Priority []core.EvaluationRecord // positions [69,88)
	Ordinary []core.EvaluationRecord // positions [15,59) followed by [88,end)
	Tail     []core.EvaluationRecord // positions [59,69), placed last
}

// Partition splits records into the four presentation groups. Slicing clamps
// to the available length, so short or empty inputs produce shorter or empty
// groups; Partition never fails.
func Partition(records []core.EvaluationRecord) Groups {
	n := len(records)
	clamp := func(i int) int {
		if i > n {
			return n
		}
		return i
	}

	ordinary := append([]core.EvaluationRecord{}, records[clamp(frontEnd):clamp(ordinaryEnd)]...)
	ordinary = append(ordinary, records[clamp(priorityEnd):]...)

	return Groups{
		Front:    records[:clamp(frontEnd)],
		Priority: records[clamp(priorityStart):clamp(priorityEnd)],
		Ordinary: ordinary,
		Tail:     records[clamp(ordinaryEnd):clamp(tailEnd)],
	}
}
