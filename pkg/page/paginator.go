// Package page provides fixed-size pagination over a reordered review
// sequence.
package page

import (
	"fmt"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

// DefaultSize is the number of review cards shown per page.
const DefaultSize = 10

// Paginator tracks the current window over a reordered sequence. It is owned
// by a single session controller and is not safe for concurrent use.
type Paginator struct {
	size    int
	total   int
	current int
}

// New creates a paginator over totalItems records. Non-positive page sizes
// fall back to DefaultSize; negative totals are treated as empty.
func New(totalItems, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultSize
	}
	if totalItems < 0 {
		totalItems = 0
	}
	return &Paginator{size: pageSize, total: totalItems}
}

// Size returns the page size.
func (p *Paginator) Size() int { return p.size }

// TotalItems returns the number of records being paged.
func (p *Paginator) TotalItems() int { return p.total }

// TotalPages is ceil(totalItems/size); zero when the sequence is empty.
func (p *Paginator) TotalPages() int {
	if p.total == 0 {
		return 0
	}
	return (p.total + p.size - 1) / p.size
}

// Current returns the zero-based current page index.
func (p *Paginator) Current() int { return p.current }

// Next advances one page; at the last page it is a no-op.
func (p *Paginator) Next() {
	if p.current < p.TotalPages()-1 {
		p.current++
	}
}

// Previous steps back one page; at the first page it is a no-op.
func (p *Paginator) Previous() {
	if p.current > 0 {
		p.current--
	}
}

// Reset returns to the first page.
func (p *Paginator) Reset() { p.current = 0 }

// SetCurrent jumps to a page; out-of-range indices are ignored.
func (p *Paginator) SetCurrent(index int) {
	if index >= 0 && index < p.TotalPages() {
		p.current = index
	}
}

// Bounds returns the half-open [start, end) bounds of the current page.
func (p *Paginator) Bounds() (int, int) {
	start := p.current * p.size
	end := start + p.size
	if end > p.total {
		end = p.total
	}
	if start > end {
		start = end
	}
	return start, end
}

// Slice returns the current page's window of seq.
func (p *Paginator) Slice(seq []core.EvaluationRecord) []core.EvaluationRecord {
	start, end := p.Bounds()
	if start >= len(seq) {
		return nil
	}
	if end > len(seq) {
		end = len(seq)
	}
	return seq[start:end]
}

// RangeLabel describes the displayed bounds using 1-based display numbers,
// e.g. "Showing 11-20 of 25".
func (p *Paginator) RangeLabel() string {
	if p.total == 0 {
		return "No samples"
	}
	start, end := p.Bounds()
	return fmt.Sprintf("Showing %d-%d of %d", start+1, end, p.total)
}
