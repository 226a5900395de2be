package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreDefaultsWhenMissing(t *testing.T) {
	store := &Store{Path: filepath.Join(t.TempDir(), "prefs.json")}

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, Default(), got)
}

func TestStoreRoundTrip(t *testing.T) {
	store := &Store{Path: filepath.Join(t.TempDir(), "nested", "prefs.json")}

	want := Preferences{FontSize: 22, Theme: "light", View: "list"}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := &Store{Path: path}
	_, err := store.Load()
	require.Error(t, err)
}
