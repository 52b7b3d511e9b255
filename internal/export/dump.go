// ABOUTME: Full-data dump for backup and import.
// ABOUTME: JSON and YAML renderings of all progress and completion data.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/peekaboo/internal/models"
	"github.com/harperreed/peekaboo/internal/storage"
	"gopkg.in/yaml.v3"
)

// Dump is the full export format for training data.
type Dump struct {
	Version    string                      `json:"version" yaml:"version"`
	ExportedAt time.Time                   `json:"exported_at" yaml:"exported_at"`
	Tool       string                      `json:"tool" yaml:"tool"`
	Progress   []*models.ProgressRecord    `json:"progress" yaml:"progress"`
	Sessions   []*models.SessionCompletion `json:"sessions" yaml:"sessions"`
}

// NewDump gathers all stored data into a Dump.
func NewDump(repo storage.Repository) (*Dump, error) {
	records, err := repo.ListProgress()
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	completions, err := repo.ListCompletions()
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}

	return &Dump{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "peekaboo",
		Progress:   records,
		Sessions:   completions,
	}, nil
}

// JSON renders the dump as indented JSON.
func (d *Dump) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML renders the dump as YAML.
func (d *Dump) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// Import applies a JSON dump to the store. Records land via the normal
// upsert path, so re-importing the same dump is harmless.
func Import(repo storage.Repository, data []byte) error {
	var d Dump
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("unmarshal dump: %w", err)
	}

	for _, p := range d.Progress {
		if err := repo.UpsertProgress(p); err != nil {
			return fmt.Errorf("import progress: %w", err)
		}
	}
	for _, c := range d.Sessions {
		if err := repo.LogCompletion(c.Week, c.Day, c.DurationMinutes, c.CompletedDate); err != nil {
			return fmt.Errorf("import completion: %w", err)
		}
	}
	return nil
}
