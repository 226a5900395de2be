package core

import "context"

// Dataset provides evaluation records for review.
type Dataset interface {
	Name() string
	Len(ctx context.Context) (int, error)
	Records(ctx context.Context) (<-chan EvaluationRecord, <-chan error)
}
