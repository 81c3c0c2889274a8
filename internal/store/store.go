// Package store is the durable device-local progress store: one JSON
// document mapping learner name to progress record, plus a scalar file
// remembering who is logged in. The local store is the source of truth;
// the remote store is a best-effort mirror of it.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oguzk/denizci/internal/progress"
)

const (
	progressFile = "progress.json"
	userFile     = "user"
)

// Store reads and writes the local data directory.
type Store struct {
	dir string
}

// Open creates a Store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// LoadAll returns the full name-to-record mapping. A missing or corrupt
// progress file degrades to an empty mapping: local corruption must
// never block the app.
func (s *Store) LoadAll() map[string]progress.Record {
	records := make(map[string]progress.Record)

	data, err := os.ReadFile(filepath.Join(s.dir, progressFile))
	if err != nil {
		return records
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return make(map[string]progress.Record)
	}

	for name, rec := range records {
		records[name] = normalize(rec)
	}
	return records
}

// SaveAll writes the full mapping back to disk.
func (s *Store) SaveAll(records map[string]progress.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, progressFile), data, 0o644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

// Load returns one learner's record, empty if absent. It never fails.
func (s *Store) Load(name string) progress.Record {
	if rec, ok := s.LoadAll()[name]; ok {
		return rec
	}
	return progress.NewRecord()
}

// Save writes one learner's record.
func (s *Store) Save(name string, rec progress.Record) error {
	records := s.LoadAll()
	records[name] = rec
	return s.SaveAll(records)
}

// Names returns all locally known learner names.
func (s *Store) Names() []string {
	records := s.LoadAll()
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	return names
}

// CurrentUser returns the remembered identity, empty when logged out.
func (s *Store) CurrentUser() string {
	data, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SetCurrentUser remembers the logged-in identity. Empty logs out.
func (s *Store) SetCurrentUser(name string) error {
	path := filepath.Join(s.dir, userFile)
	if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
		return fmt.Errorf("write current user: %w", err)
	}
	return nil
}

// normalize replaces nil maps left by deserialization so callers never
// see a half-initialized record.
func normalize(rec progress.Record) progress.Record {
	if rec.Answers == nil {
		rec.Answers = make(map[int]int)
	}
	if rec.Completed == nil {
		rec.Completed = make(map[string]bool)
	}
	return rec
}

// DefaultDataDir resolves the data directory in priority order:
// 1. DENIZCI_DATA environment variable
// 2. $XDG_DATA_HOME/denizci
// 3. ~/.local/share/denizci
func DefaultDataDir() (string, error) {
	if p := os.Getenv("DENIZCI_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "denizci"), nil
}
