// ABOUTME: Backup manager for the training database file.
// ABOUTME: Timestamped snapshots, pruned to the most recent ten.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// MaxSnapshots is how many snapshots survive pruning.
	MaxSnapshots = 10

	snapshotPrefix = "backup_"
	snapshotSuffix = ".db"
)

// ErrNotFound is returned when a named snapshot does not exist.
var ErrNotFound = errors.New("backup not found")

// Manager snapshots and restores the live database file.
type Manager struct {
	dbPath string
	dir    string
}

// NewManager creates a Manager for the given live database file,
// writing snapshots into dir.
func NewManager(dbPath, dir string) *Manager {
	return &Manager{dbPath: dbPath, dir: dir}
}

// Dir returns the backup directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Snapshot copies the live database to a timestamped file and prunes old
// snapshots. Returns "" with no error when no live database exists yet.
// Two snapshots within the same second collide; the last write wins.
func (m *Manager) Snapshot() (string, error) {
	data, err := os.ReadFile(m.dbPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read database: %w", err)
	}

	if err := os.MkdirAll(m.dir, 0750); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	name := snapshotPrefix + time.Now().Format("20060102_150405") + snapshotSuffix
	path := filepath.Join(m.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	if err := m.prune(); err != nil {
		return "", fmt.Errorf("prune snapshots: %w", err)
	}

	return path, nil
}

// Restore overwrites the live database with a snapshot's bytes, taking a
// safety snapshot of the current state first. Returns ErrNotFound when
// the named snapshot does not exist.
func (m *Manager) Restore(name string) error {
	path, err := m.Path(name)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("read snapshot: %w", err)
	}

	// Safety snapshot of the pre-restore state
	if _, err := m.Snapshot(); err != nil {
		return fmt.Errorf("safety snapshot: %w", err)
	}

	if err := os.WriteFile(m.dbPath, data, 0600); err != nil {
		return fmt.Errorf("restore database: %w", err)
	}
	return nil
}

// Info describes one stored snapshot.
type Info struct {
	Name    string    `json:"name"`
	ModTime time.Time `json:"date"`
}

// List returns stored snapshots newest-first, capped at limit.
// A limit of zero or less means no cap.
func (m *Manager) List(limit int) ([]Info, error) {
	names, err := m.snapshotNames()
	if err != nil {
		return nil, err
	}

	// Timestamped names sort chronologically; reverse for newest-first.
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}

	infos := make([]Info, 0, len(names))
	for _, name := range names {
		fi, err := os.Stat(filepath.Join(m.dir, name))
		if err != nil {
			continue
		}
		infos = append(infos, Info{Name: name, ModTime: fi.ModTime()})
	}
	return infos, nil
}

// Path resolves a snapshot name to its path, rejecting names that are not
// plain snapshot files. Returns ErrNotFound when the file does not exist.
func (m *Manager) Path(name string) (string, error) {
	if name != filepath.Base(name) ||
		!strings.HasPrefix(name, snapshotPrefix) ||
		!strings.HasSuffix(name, snapshotSuffix) {
		return "", ErrNotFound
	}

	path := filepath.Join(m.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

// prune deletes the oldest snapshots until at most MaxSnapshots remain.
func (m *Manager) prune() error {
	names, err := m.snapshotNames()
	if err != nil {
		return err
	}
	if len(names) <= MaxSnapshots {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-MaxSnapshots] {
		if err := os.Remove(filepath.Join(m.dir, name)); err != nil {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

// snapshotNames lists snapshot filenames in the backup directory.
func (m *Manager) snapshotNames() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, snapshotPrefix) && strings.HasSuffix(name, snapshotSuffix) {
			names = append(names, name)
		}
	}
	return names, nil
}
