package dataset

import (
	"context"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

type SliceDataset struct {
	NameHint string
	Items    []core.EvaluationRecord
}

func NewSliceDataset(records []core.EvaluationRecord, name string) *SliceDataset {
	if name == "" {
		name = "memory"
	}
	return &SliceDataset{NameHint: name, Items: records}
}

func (d *SliceDataset) Name() string {
	return d.NameHint
}

func (d *SliceDataset) Len(ctx context.Context) (int, error) {
	return len(d.Items), nil
}

func (d *SliceDataset) Records(ctx context.Context) (<-chan core.EvaluationRecord, <-chan error) {
	recordCh := make(chan core.EvaluationRecord)
	errCh := make(chan error, 1)
	go func() {
		defer close(recordCh)
		defer close(errCh)
		for _, record := range d.Items {
			select {
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			case recordCh <- record:
			}
		}
	}()
	return recordCh, errCh
}
