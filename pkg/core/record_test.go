package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractSampleID(t *testing.T) {
	require.Equal(t, 42, ExtractSampleID("foo/sample_00042.wav"))
	require.Equal(t, 5, ExtractSampleID("sample_00005.wav"))
	require.Equal(t, 17, ExtractSampleID("deep/nested/dir/sample_17.wav"))
}

func TestExtractSampleIDNoMatch(t *testing.T) {
	require.Equal(t, 0, ExtractSampleID("bad/name.mp3"))
	require.Equal(t, 0, ExtractSampleID("sample_12.wav.bak"))
	require.Equal(t, 0, ExtractSampleID("sample_.wav"))
	require.Equal(t, 0, ExtractSampleID(""))
}

func TestRecordSampleID(t *testing.T) {
	rec := EvaluationRecord{Path: "clips/sample_9.wav"}
	require.Equal(t, 9, rec.SampleID())
}
