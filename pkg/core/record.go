package core

import (
	"regexp"
	"strconv"
)

// EvaluationRecord is one ground-truth/prediction pair under review.
// Records are immutable once loaded; reordering copies them into derived
// sequences and never edits fields.
type EvaluationRecord struct {
	Path        string `json:"path" yaml:"path"`
	GroundTruth string `json:"ground_truth" yaml:"ground_truth"`
	Prediction  string `json:"prediction" yaml:"prediction"`
}

var samplePattern = regexp.MustCompile(`sample_(\d+)\.wav$`)

// ExtractSampleID parses the numeric sample id embedded in an audio path,
// e.g. "clips/sample_00042.wav" yields 42. Paths that do not end in
// sample_<digits>.wav yield 0; the absence of a match is a normal case,
// not an error. Ids are therefore not unique across an input set.
func ExtractSampleID(path string) int {
	m := samplePattern.FindStringSubmatch(path)
	if m == nil {
		return 0
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return id
}

// SampleID returns the sample id embedded in the record's path.
func (r EvaluationRecord) SampleID() int {
	return ExtractSampleID(r.Path)
}
