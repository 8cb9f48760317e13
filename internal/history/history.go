// Package history persists submitted chat inputs across runs so they
// can be recalled into the input widget.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// maxEntries caps the file so it does not grow without bound.
const maxEntries = 1000

type file struct {
	Entries   []string  `json:"entries"`
	LastSaved time.Time `json:"last_saved"`
}

// Store holds the submitted-input history for one user.
type Store struct {
	path    string
	entries []string
	dirty   bool
}

// Load reads the history file, starting fresh when it is missing or
// unreadable.
func Load() (*Store, error) {
	path, err := historyPath()
	if err != nil {
		return nil, err
	}
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, nil // no existing history, start fresh
	}
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return s, nil
	}
	s.entries = f.Entries
	return s, nil
}

func historyPath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(stateDir, "qchat")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Entries returns the history, oldest first.
func (s *Store) Entries() []string {
	return s.entries
}

// Append records a submitted input. Consecutive duplicates are dropped
// and the list is trimmed to the newest maxEntries.
func (s *Store) Append(entry string) {
	if entry == "" {
		return
	}
	if n := len(s.entries); n > 0 && s.entries[n-1] == entry {
		return
	}
	s.entries = append(s.entries, entry)
	if len(s.entries) > maxEntries {
		s.entries = s.entries[len(s.entries)-maxEntries:]
	}
	s.dirty = true
}

// Save persists the history if it changed since the last save.
func (s *Store) Save() error {
	if !s.dirty {
		return nil
	}
	data, err := json.MarshalIndent(file{
		Entries:   s.entries,
		LastSaved: time.Now(),
	}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}
	s.dirty = false
	return nil
}
