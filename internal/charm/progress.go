// ABOUTME: Push/pull of progress records and completions over Charm KV.
// ABOUTME: Records are JSON payloads under (week, day) keyed entries.
package charm

import (
	"encoding/json"
	"fmt"

	"github.com/harperreed/peekaboo/internal/models"
	"github.com/harperreed/peekaboo/internal/storage"
)

// progressKey builds the KV key for a (week, day) progress record.
func progressKey(week, day int) string {
	return fmt.Sprintf("%s%d:%d", ProgressPrefix, week, day)
}

// completionKey builds the KV key for a (week, day) completion entry.
func completionKey(week, day int) string {
	return fmt.Sprintf("%s%d:%d", CompletionPrefix, week, day)
}

// Push mirrors every local record into the KV store and syncs with
// Charm Cloud. Returns how many records were pushed.
func (c *Client) Push(repo storage.Repository) (int, error) {
	records, err := repo.ListProgress()
	if err != nil {
		return 0, fmt.Errorf("list progress: %w", err)
	}

	pushed := 0
	for _, p := range records {
		data, err := json.Marshal(p)
		if err != nil {
			return pushed, fmt.Errorf("marshal progress: %w", err)
		}
		if err := c.set(progressKey(p.Week, p.Day), data); err != nil {
			return pushed, fmt.Errorf("store progress W%dD%d: %w", p.Week, p.Day, err)
		}
		pushed++
	}

	completions, err := repo.ListCompletions()
	if err != nil {
		return pushed, fmt.Errorf("list completions: %w", err)
	}
	for _, comp := range completions {
		data, err := json.Marshal(comp)
		if err != nil {
			return pushed, fmt.Errorf("marshal completion: %w", err)
		}
		if err := c.set(completionKey(comp.Week, comp.Day), data); err != nil {
			return pushed, fmt.Errorf("store completion W%dD%d: %w", comp.Week, comp.Day, err)
		}
	}

	if err := c.Sync(); err != nil {
		return pushed, fmt.Errorf("sync: %w", err)
	}
	return pushed, nil
}

// Pull syncs from Charm Cloud and applies every mirrored record into the
// local store via the normal upsert path. Cloud records win over local
// ones for the same (week, day). Returns how many records were applied.
func (c *Client) Pull(repo storage.Repository) (int, error) {
	if err := c.Sync(); err != nil {
		return 0, fmt.Errorf("sync: %w", err)
	}

	payloads, err := c.listByPrefix(ProgressPrefix)
	if err != nil {
		return 0, fmt.Errorf("list mirrored progress: %w", err)
	}

	applied := 0
	for _, data := range payloads {
		var p models.ProgressRecord
		if err := json.Unmarshal(data, &p); err != nil {
			continue // Skip invalid entries
		}
		if err := repo.UpsertProgress(&p); err != nil {
			return applied, fmt.Errorf("apply progress W%dD%d: %w", p.Week, p.Day, err)
		}
		applied++
	}

	completions, err := c.listByPrefix(CompletionPrefix)
	if err != nil {
		return applied, fmt.Errorf("list mirrored completions: %w", err)
	}
	for _, data := range completions {
		var comp models.SessionCompletion
		if err := json.Unmarshal(data, &comp); err != nil {
			continue
		}
		if err := repo.LogCompletion(comp.Week, comp.Day, comp.DurationMinutes, comp.CompletedDate); err != nil {
			return applied, fmt.Errorf("apply completion W%dD%d: %w", comp.Week, comp.Day, err)
		}
	}

	return applied, nil
}

// MirroredCount reports how many progress records the mirror holds.
func (c *Client) MirroredCount() (int, error) {
	payloads, err := c.listByPrefix(ProgressPrefix)
	if err != nil {
		return 0, err
	}
	return len(payloads), nil
}
