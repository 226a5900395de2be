// Package prefs persists the reviewer's display preferences between
// sessions.
package prefs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Preferences are the display settings the review UI reflects.
type Preferences struct {
	FontSize int    `json:"font_size"`
	Theme    string `json:"theme"`
	View     string `json:"view"`
}

// Default returns the preferences used when nothing has been saved yet.
func Default() Preferences {
	return Preferences{
		FontSize: 16,
		Theme:    "dark",
		View:     "cards",
	}
}

type Store struct {
	Path string
}

// NewStore creates a preference store at path; an empty path defaults to
// ~/.evalview/prefs.json.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".evalview", "prefs.json")
	}
	return &Store{Path: path}, nil
}

// Load reads the saved preferences; a missing file yields the defaults.
func (s *Store) Load() (Preferences, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Preferences{}, err
	}

	prefs := Default()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

// Save writes the preferences, creating the parent directory if needed.
func (s *Store) Save(prefs Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}
