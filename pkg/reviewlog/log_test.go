package reviewlog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/C0deXG/model-evalV7/pkg/core"
	"github.com/C0deXG/model-evalV7/pkg/scorer"
	"github.com/C0deXG/model-evalV7/pkg/session"
)

func sampleLog(t *testing.T) ReviewLog {
	t.Helper()
	records := make([]core.EvaluationRecord, 25)
	for i := range records {
		records[i] = core.EvaluationRecord{
			Path:        fmt.Sprintf("clips/sample_%d.wav", i+1),
			GroundTruth: "hello",
			Prediction:  "hello",
		}
	}
	s := session.New("dev.json", records, session.Options{
		Seed:   11,
		Scorer: scorer.ExactMatch{NormalizeWhitespace: true},
	})
	return FromReport(s.Report())
}

func TestFromReport(t *testing.T) {
	log := sampleLog(t)

	require.Equal(t, Version, log.Version)
	require.Equal(t, "dev.json", log.Dataset)
	require.Equal(t, int64(11), log.Seed)
	require.Equal(t, "exact", log.Scorer)
	require.Len(t, log.Entries, 25)
	require.Len(t, log.Pages, 3)
	require.Equal(t, 10, log.PageSize)

	// Display numbers stay sequential across pages.
	for i, entry := range log.Entries {
		require.Equal(t, i+1, entry.Number)
	}
}

func TestWriteReadJSON(t *testing.T) {
	dir := t.TempDir()
	log := sampleLog(t)

	path, err := WriteJSON(dir, log)
	require.NoError(t, err)

	got, err := ReadJSON(path)
	require.NoError(t, err)
	require.Equal(t, log.SessionID, got.SessionID)
	require.Equal(t, log.Entries, got.Entries)
	require.Equal(t, log.Pages, got.Pages)
}

func TestWriteReadBundle(t *testing.T) {
	dir := t.TempDir()
	log := sampleLog(t)

	path, err := WriteBundle(dir, log)
	require.NoError(t, err)

	got, err := ReadBundle(path)
	require.NoError(t, err)
	require.Equal(t, log.SessionID, got.SessionID)
	require.Equal(t, log.Converged, got.Converged)
	require.Len(t, got.Entries, len(log.Entries))
	require.Equal(t, log.Entries, got.Entries)
}

func TestWriteJSONRequiresDir(t *testing.T) {
	_, err := WriteJSON("", ReviewLog{})
	require.Error(t, err)
}
