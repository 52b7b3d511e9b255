// ABOUTME: Settings document management with defaulting and merge-on-load.
// ABOUTME: Malformed or missing files silently fall back to defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/harperreed/peekaboo/internal/models"
	"github.com/harperreed/peekaboo/internal/storage"
)

// SettingsPath returns the settings file path inside the data directory.
func SettingsPath() string {
	return filepath.Join(storage.DataDir(), "settings.json")
}

// Load reads the settings document from disk, merging it over defaults.
// A missing or malformed file yields the defaults; load never fails on
// bad content, only the defaults are returned.
func Load(path string) *models.Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.DefaultSettings()
	}

	var s models.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return models.DefaultSettings()
	}
	return &s
}

// Save writes the settings document to disk, creating parent directories.
func Save(path string, s *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// EnsureExists writes the default settings file if none is present yet.
func EnsureExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return Save(path, models.DefaultSettings())
}
