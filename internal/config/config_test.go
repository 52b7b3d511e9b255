// ABOUTME: Tests for settings load/save behavior.
// ABOUTME: Covers missing files, malformed content, and round-trips.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/peekaboo/internal/models"
)

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := Load(path)
	def := models.DefaultSettings()

	if s.TrainingTime != def.TrainingTime || s.Theme != def.Theme {
		t.Error("expected defaults for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	s := Load(path)
	if s.Timezone != models.DefaultTimezone {
		t.Error("expected defaults for malformed file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	s := models.DefaultSettings()
	s.Theme = "dark"
	s.TrainingTime = "18:30"
	s.ReminderEnabled = false

	if err := Save(path, s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := Load(path)
	if got.Theme != "dark" {
		t.Errorf("expected theme dark, got %q", got.Theme)
	}
	if got.TrainingTime != "18:30" {
		t.Errorf("expected training time 18:30, got %q", got.TrainingTime)
	}
	if got.ReminderEnabled {
		t.Error("expected reminders disabled")
	}
	// Untouched keys keep their defaults
	if got.Timezone != models.DefaultTimezone {
		t.Errorf("expected default timezone, got %q", got.Timezone)
	}
}

func TestEnsureExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	if err := EnsureExists(path); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file to exist: %v", err)
	}

	// A second call must not clobber edits.
	s := Load(path)
	s.Theme = "dark"
	if err := Save(path, s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := EnsureExists(path); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}
	if got := Load(path); got.Theme != "dark" {
		t.Error("expected EnsureExists to leave existing file untouched")
	}
}
