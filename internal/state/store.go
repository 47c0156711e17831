// Package state implements the durable key store shared across hook
// invocations. Two kinds of keys live here: the session theme record
// (small value) and the startup cancellation marker (existence only).
// Both follow a last-writer/last-deleter-wins policy with no locking;
// the cost of losing a race is a stray or missing sound cue, so nothing
// stronger is needed.
package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// filePrefix namespaces store files inside a shared directory such as /tmp.
const filePrefix = "ringring-"

// Store is a flat file-per-key store rooted at a single directory.
// All operations are independently safe to call from unrelated processes.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. An empty dir means the system
// temp directory, matching where earlier releases kept session state.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Store{dir: dir}
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// ThemeKey is the session theme record key for a session.
func ThemeKey(sessionID string) string {
	return "theme-" + sanitize(sessionID)
}

// StartupKey is the startup cancellation marker key for a session.
func StartupKey(sessionID string) string {
	return "startup-" + sanitize(sessionID)
}

// sanitize makes an opaque session identifier safe to embed in a file name.
func sanitize(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-':
			return r
		default:
			return '-'
		}
	}, id)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, filePrefix+key)
}

// Put creates or overwrites the value for key. The write is atomic
// (temp file plus rename) so a concurrent reader never sees a torn value.
func (s *Store) Put(key, value string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Get returns the value for key. The second return value is false when the
// key is absent or unreadable.
func (s *Store) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// Exists reports whether key is present. The error is non-nil only when
// presence could not be determined at all; callers using absence as a
// cancellation signal treat that case as "still present".
func (s *Store) Exists(key string) (bool, error) {
	_, err := os.Stat(s.path(key))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Remove deletes key if present. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
