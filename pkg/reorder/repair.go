package reorder

import "github.com/C0deXG/model-evalV7/pkg/core"

// repairBudget bounds the outer fixpoint loop. Adversarial inputs, such as a
// long run of strictly consecutive ids inside one flagged range, can exhaust
// it; the sequence is then returned best-effort with violations remaining.
const repairBudget = 100

// Repair rearranges seq in place until no two adjacent records violate the
// same-range adjacency rule, or the attempt budget runs out. Each attempt
// fixes the leftmost violating pair by swapping its right member with the
// leftmost later record that does not itself violate against the left member,
// then rescans from the start. The returned bool reports convergence to zero
// violations; callers that need a guarantee must check it.
func Repair(seq []core.EvaluationRecord) bool {
	for attempt := 0; attempt < repairBudget; attempt++ {
		i := firstViolation(seq)
		if i < 0 {
			return true
		}

		swapped := false
		for j := i + 2; j < len(seq); j++ {
			if !core.SameProblematicRangeAdjacent(seq[i].SampleID(), seq[j].SampleID()) {
				seq[i+1], seq[j] = seq[j], seq[i+1]
				swapped = true
				break
			}
		}
		if !swapped {
			// Every later record violates against seq[i]; rescanning
			// would pick the same pair again, so stop early.
			return false
		}
	}
	return firstViolation(seq) < 0
}

// firstViolation returns the index of the leftmost adjacent violating pair,
// or -1 when the sequence is clean.
func firstViolation(seq []core.EvaluationRecord) int {
	for i := 0; i+1 < len(seq); i++ {
		if core.SameProblematicRangeAdjacent(seq[i].SampleID(), seq[i+1].SampleID()) {
			return i
		}
	}
	return -1
}

// CountViolations counts adjacent violating pairs in seq.
func CountViolations(seq []core.EvaluationRecord) int {
	count := 0
	for i := 0; i+1 < len(seq); i++ {
		if core.SameProblematicRangeAdjacent(seq[i].SampleID(), seq[i+1].SampleID()) {
			count++
		}
	}
	return count
}

// HasResidualViolations reports whether any adjacent violating pair remains.
// Production callers accept best-effort output; this exists for callers and
// tests that want to inspect the result.
func HasResidualViolations(seq []core.EvaluationRecord) bool {
	return firstViolation(seq) >= 0
}
