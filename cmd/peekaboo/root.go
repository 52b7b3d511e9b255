// ABOUTME: Root Cobra command for peekaboo CLI.
// ABOUTME: Opens storage and backups via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harperreed/peekaboo/internal/backup"
	"github.com/harperreed/peekaboo/internal/config"
	"github.com/harperreed/peekaboo/internal/storage"
)

var (
	dataDir string

	repo         storage.Repository
	backups      *backup.Manager
	settingsPath string
)

var rootCmd = &cobra.Command{
	Use:   "peekaboo",
	Short: "Six-week peek-a-boo boxing training tracker",
	Long: `Peekaboo tracks your progress through a fixed six-week peek-a-boo
boxing program: five sessions a week, each rated for fluidity,
endurance, and power.

QUICK START:

  $ peekaboo log 1 1 --fluidity 7 --endurance 8 --power 6   # Rate a session
  $ peekaboo list                                           # See saved ratings
  $ peekaboo stats                                          # Averages so far
  $ peekaboo serve                                          # Web dashboard

EXPORT & BACKUP:

  $ peekaboo export progress               # Progress as CSV
  $ peekaboo export calendar               # Calendar import CSV
  $ peekaboo export program                # Full program as text
  $ peekaboo backup create                 # Snapshot the database
  $ peekaboo backup restore <name>         # Roll back to a snapshot

SYNC (MANUAL):

  Mirror your ratings to Charm Cloud with 'peekaboo sync push' and
  fetch them on another machine with 'peekaboo sync pull'.

MCP INTEGRATION:

  Run 'peekaboo mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "peekaboo": { "command": "peekaboo", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  The database, settings, and backups live under
  ~/.local/share/peekaboo (or $XDG_DATA_HOME/peekaboo).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		dir := dataDir
		if dir == "" {
			dir = storage.DataDir()
		}

		var err error
		repo, err = storage.Open(filepath.Join(dir, "peekaboo.db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		backups = backup.NewManager(repo.Path(), filepath.Join(dir, "backup"))
		settingsPath = filepath.Join(dir, "settings.json")
		if err := config.EnsureExists(settingsPath); err != nil {
			return fmt.Errorf("failed to initialize settings: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default: XDG data dir)")
}
