package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/C0deXG/model-evalV7/pkg/core"
)

func TestFileDatasetResultsEnvelope(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")

	payload := `{"results":[
		{"path":"clips/sample_1.wav","ground_truth":"first truth","prediction":"first guess"},
		{"path":"clips/sample_2.wav","ground_truth":"second truth","prediction":"second guess"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	ds := NewFileDataset(path)
	count, err := ds.Len(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, count)

	records, err := ds.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "clips/sample_1.wav", records[0].Path)
	require.Equal(t, "first truth", records[0].GroundTruth)
	require.Equal(t, "second guess", records[1].Prediction)
}

func TestFileDatasetBareArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")

	payload := `[{"path":"clips/sample_3.wav","ground_truth":"gt","prediction":"p"}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	records, err := NewFileDataset(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 3, records[0].SampleID())
}

func TestFileDatasetMissingResults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")

	require.NoError(t, os.WriteFile(path, []byte(`{"other":[]}`), 0o600))

	_, err := NewFileDataset(path).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing results")
}

func TestFileDatasetJSONL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.jsonl")

	lines := `{"path":"clips/sample_1.wav","ground_truth":"a","prediction":"a"}
{"path":"clips/sample_2.wav","ground_truth":"b","prediction":"c"}`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	ds := NewFileDataset(path)
	count, err := ds.Len(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, count)

	records, err := ds.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "b", records[1].GroundTruth)
}

func TestFileDatasetEmptyResults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")

	require.NoError(t, os.WriteFile(path, []byte(`{"results":[]}`), 0o600))

	records, err := NewFileDataset(path).Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestSliceDataset(t *testing.T) {
	items := []core.EvaluationRecord{
		{Path: "clips/sample_1.wav"},
		{Path: "clips/sample_2.wav"},
	}
	ds := NewSliceDataset(items, "")
	require.Equal(t, "memory", ds.Name())

	count, err := ds.Len(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, count)

	recordCh, errCh := ds.Records(context.Background())
	var got []core.EvaluationRecord
	for record := range recordCh {
		got = append(got, record)
	}
	for err := range errCh {
		require.NoError(t, err)
	}
	require.Equal(t, items, got)
}
