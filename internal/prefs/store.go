// Package prefs persists user preferences (theme, first-run marker)
// in a small JSON file. Writes go through a temp file and rename so a
// crash mid-write never leaves a truncated file behind.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pvernier/macrolog/internal/domain"
	"github.com/pvernier/macrolog/internal/logger"
)

// Compile-time interface check.
var _ domain.PreferenceStore = (*FileStore)(nil)

// DefaultPath returns the preference file location under the user's
// home directory, or a relative fallback when home is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".macrolog/prefs.json"
	}
	return filepath.Join(home, ".macrolog", "prefs.json")
}

// FileStore reads and writes preferences at a fixed path.
type FileStore struct {
	path string
	log  *logger.Logger
}

// NewFileStore creates a store for the given path.
func NewFileStore(path string, log *logger.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Load reads the preference file. A missing or corrupt file yields the
// defaults (dark theme, first run pending) rather than an error — the
// app must start regardless.
func (s *FileStore) Load() (domain.Preferences, error) {
	defaults := domain.Preferences{Theme: "dark"}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("prefs: read %s: %v, using defaults", s.path, err)
		}
		return defaults, nil
	}

	var p domain.Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("prefs: invalid %s, using defaults", s.path)
		return defaults, nil
	}
	if p.Theme != "light" && p.Theme != "dark" {
		p.Theme = "dark"
	}
	return p, nil
}

// Save writes the preference file atomically, creating its directory
// on first use.
func (s *FileStore) Save(p domain.Preferences) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("prefs: create dir: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("prefs: marshal: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "prefs-*.json")
	if err != nil {
		return fmt.Errorf("prefs: create temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("prefs: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("prefs: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("prefs: rename: %w", err)
	}

	s.log.Debug("prefs: saved (theme=%s)", p.Theme)
	return nil
}
