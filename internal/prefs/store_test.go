package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pvernier/macrolog/internal/domain"
	"github.com/pvernier/macrolog/internal/logger"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	return NewFileStore(path, logger.New(logger.LevelOff, nil))
}

func TestLoadDefaults(t *testing.T) {
	s := newStore(t)

	p, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Theme != "dark" {
		t.Fatalf("default theme = %q, want dark", p.Theme)
	}
	if p.FirstRunDone {
		t.Fatal("fresh store claims a previous run")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)

	want := domain.Preferences{Theme: "light", FirstRunDone: true}
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := newStore(t)
	os.MkdirAll(filepath.Dir(s.path), 0o755)
	os.WriteFile(s.path, []byte("{nope"), 0o644)

	p, err := s.Load()
	if err != nil {
		t.Fatalf("corrupt file must not error: %v", err)
	}
	if p.Theme != "dark" {
		t.Fatalf("theme = %q, want defaults", p.Theme)
	}
}

func TestLoadUnknownTheme(t *testing.T) {
	s := newStore(t)
	if err := s.Save(domain.Preferences{Theme: "solarized"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	p, _ := s.Load()
	if p.Theme != "dark" {
		t.Fatalf("unknown theme normalized to %q, want dark", p.Theme)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := newStore(t)
	if err := s.Save(domain.Preferences{Theme: "dark"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(s.path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "prefs.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Fatalf("stray files after save: %v", names)
	}
}
