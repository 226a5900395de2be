package core

// Score represents a numeric match score and pass/fail status for one
// ground-truth/prediction pair.
type Score struct {
	Value  float64 `json:"value" yaml:"value"`
	Max    float64 `json:"max" yaml:"max"`
	Passed bool    `json:"passed" yaml:"passed"`
}

// PageItem is one record positioned on a page. Number is the 1-based display
// number in the reordered sequence; it is purely positional and unrelated to
// the record's embedded sample id.
type PageItem struct {
	Number int              `json:"number" yaml:"number"`
	Record EvaluationRecord `json:"record" yaml:"record"`
	Score  *Score           `json:"score,omitempty" yaml:"score,omitempty"`
}

// Page is a fixed-size contiguous window over the reordered sequence.
type Page struct {
	Items      []PageItem `json:"items" yaml:"items"`
	Index      int        `json:"index" yaml:"index"`
	TotalPages int        `json:"total_pages" yaml:"total_pages"`
	RangeLabel string     `json:"range_label" yaml:"range_label"`
}

// ReviewReport captures one review session's presentation order for
// rendering or export.
type ReviewReport struct {
	Dataset    string `json:"dataset" yaml:"dataset"`
	SessionID  string `json:"session_id" yaml:"session_id"`
	Seed       int64  `json:"seed" yaml:"seed"`
	Converged  bool   `json:"converged" yaml:"converged"`
	TotalItems int    `json:"total_items" yaml:"total_items"`
	ScorerName string `json:"scorer_name,omitempty" yaml:"scorer_name,omitempty"`
	Pages      []Page `json:"pages" yaml:"pages"`
}
