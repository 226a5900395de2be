// Package session owns the state of one review pass: the reordered
// presentation sequence and the paginator over it. A session is mutated only
// by explicit navigation calls from a single owner; nothing here is safe for
// concurrent use and nothing needs to be.
package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/C0deXG/model-evalV7/pkg/core"
	"github.com/C0deXG/model-evalV7/pkg/page"
	"github.com/C0deXG/model-evalV7/pkg/reorder"
)

// Options configures a new review session.
type Options struct {
	PageSize int         // 0 means page.DefaultSize
	Seed     int64       // 0 means time-seeded
	Scorer   core.Scorer // optional per-record match hint
	Logger   *zap.Logger // nil means no-op
}

// Session holds one load's presentation order and paging state.
type Session struct {
	id        string
	dataset   string
	seed      int64
	order     []core.EvaluationRecord
	converged bool
	pager     *page.Paginator
	scorer    core.Scorer
	logger    *zap.Logger
}

// New reorders records once and starts at the first page. The input slice is
// not modified.
func New(datasetName string, records []core.EvaluationRecord, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	reorderer := &reorder.Reorderer{
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
	}
	result := reorderer.Reorder(records)

	s := &Session{
		id:        uuid.NewString(),
		dataset:   datasetName,
		seed:      seed,
		order:     result.Records,
		converged: result.Converged,
		pager:     page.New(len(result.Records), opts.PageSize),
		scorer:    opts.Scorer,
		logger:    logger,
	}

	logger.Info("review session ready",
		zap.String("session_id", s.id),
		zap.String("dataset", datasetName),
		zap.Int("records", len(s.order)),
		zap.Int("pages", s.pager.TotalPages()),
		zap.Bool("converged", s.converged))

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Dataset returns the dataset name the session was built from.
func (s *Session) Dataset() string { return s.dataset }

// Seed returns the seed that produced this session's order.
func (s *Session) Seed() int64 { return s.seed }

// Converged reports whether the adjacency repair pass reached zero
// violations.
func (s *Session) Converged() bool { return s.converged }

// Len returns the number of records in the session.
func (s *Session) Len() int { return len(s.order) }

// Order returns the full presentation order. Callers must not modify the
// returned slice.
func (s *Session) Order() []core.EvaluationRecord { return s.order }

// ScorerName returns the name of the configured scorer, or "".
func (s *Session) ScorerName() string {
	if s.scorer == nil {
		return ""
	}
	return s.scorer.Name()
}

// Next moves to the next page; at the last page it is a no-op.
func (s *Session) Next() { s.pager.Next() }

// Previous moves to the previous page; at the first page it is a no-op.
func (s *Session) Previous() { s.pager.Previous() }

// Reset returns to the first page.
func (s *Session) Reset() { s.pager.Reset() }

// GoTo jumps to a page index; out-of-range indices are ignored.
func (s *Session) GoTo(index int) { s.pager.SetCurrent(index) }

// CurrentPage returns the zero-based index of the current page.
func (s *Session) CurrentPage() int { return s.pager.Current() }

// TotalPages returns the page count.
func (s *Session) TotalPages() int { return s.pager.TotalPages() }

// Page materializes the current page.
func (s *Session) Page() core.Page {
	return s.buildPage(s.pager.Current())
}

// Pages materializes every page in order.
func (s *Session) Pages() []core.Page {
	pages := make([]core.Page, 0, s.pager.TotalPages())
	for i := 0; i < s.pager.TotalPages(); i++ {
		pages = append(pages, s.buildPage(i))
	}
	return pages
}

// Report packages the whole session for rendering or export.
func (s *Session) Report() core.ReviewReport {
	return core.ReviewReport{
		Dataset:    s.dataset,
		SessionID:  s.id,
		Seed:       s.seed,
		Converged:  s.converged,
		TotalItems: len(s.order),
		ScorerName: s.ScorerName(),
		Pages:      s.Pages(),
	}
}

func (s *Session) buildPage(index int) core.Page {
	pager := page.New(len(s.order), s.pager.Size())
	pager.SetCurrent(index)
	start, _ := pager.Bounds()

	window := pager.Slice(s.order)
	items := make([]core.PageItem, 0, len(window))
	for i, record := range window {
		item := core.PageItem{
			Number: start + i + 1,
			Record: record,
		}
		if s.scorer != nil {
			score := s.scorer.Score(record.GroundTruth, record.Prediction)
			item.Score = &score
		}
		items = append(items, item)
	}

	return core.Page{
		Items:      items,
		Index:      index,
		TotalPages: pager.TotalPages(),
		RangeLabel: pager.RangeLabel(),
	}
}
