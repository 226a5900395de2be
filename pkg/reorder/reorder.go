// Package reorder turns a loaded evaluation-result sequence into the order
// records are presented for review: prioritized ranges shuffled to the front,
// ordinary ranges kept mid-sequence in original order, the end range placed
// last, followed by a bounded repair pass that separates same-range
// consecutive ids.
package reorder

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

// Reorderer computes presentation orders. The random source is injected so
// tests can replay a fixed permutation; a nil Rand falls back to a
// time-seeded source. Safe to reuse across inputs, not across goroutines.
type Reorderer struct {
	Rand   *rand.Rand
	Logger *zap.Logger
}

// Result is a reordered presentation sequence plus the repair outcome.
type Result struct {
	Records   []core.EvaluationRecord
	Converged bool
}

// Reorder produces the presentation order for records: partition by original
// position, shuffle the front and priority groups together, concatenate with
// the ordinary and tail groups, then repair adjacency violations. The output
// always has the same length and multiset of records as the input; the input
// slice is not modified.
func (r *Reorderer) Reorder(records []core.EvaluationRecord) Result {
	rng := r.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	groups := Partition(records)

	mixed := make([]core.EvaluationRecord, 0, len(groups.Front)+len(groups.Priority))
	mixed = append(mixed, groups.Front...)
	mixed = append(mixed, groups.Priority...)
	shuffle(mixed, rng)

	out := make([]core.EvaluationRecord, 0, len(records))
	out = append(out, mixed...)
	out = append(out, groups.Ordinary...)
	out = append(out, groups.Tail...)

	converged := Repair(out)
	if !converged {
		logger.Warn("adjacency repair budget exhausted",
			zap.Int("records", len(out)),
			zap.Int("residual_violations", CountViolations(out)))
	}
	logger.Debug("reorder complete",
		zap.Int("records", len(out)),
		zap.Bool("converged", converged))

	return Result{Records: out, Converged: converged}
}

// shuffle permutes seq in place with Fisher-Yates: swap from the last index
// down to 1, partner drawn uniformly from [0, i].
func shuffle(seq []core.EvaluationRecord, rng *rand.Rand) {
	for i := len(seq) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		seq[i], seq[j] = seq[j], seq[i]
	}
}
