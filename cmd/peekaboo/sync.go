// ABOUTME: Sync commands mirroring data over Charm Cloud.
// ABOUTME: Explicit push/pull plus mirror status.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/peekaboo/internal/charm"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror training data via Charm Cloud",
	Long: `Mirror training data between machines via Charm Cloud.

Syncing is always explicit: 'push' uploads your local ratings, 'pull'
downloads the mirror and applies it locally. Pulled records replace
local ones for the same session.

EXAMPLES:

  $ peekaboo sync push
  $ peekaboo sync pull
  $ peekaboo sync status`,
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload local ratings to the cloud mirror",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to connect to Charm: %w", err)
		}
		defer client.Close()

		pushed, err := client.Push(repo)
		if err != nil {
			return fmt.Errorf("push failed: %w", err)
		}
		color.Green("✓ Pushed %d records", pushed)
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Apply the cloud mirror to the local database",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to connect to Charm: %w", err)
		}
		defer client.Close()

		if _, err := backups.Snapshot(); err != nil {
			fmt.Printf("Warning: backup failed: %v\n", err)
		}

		applied, err := client.Pull(repo)
		if err != nil {
			return fmt.Errorf("pull failed: %w", err)
		}
		color.Green("✓ Applied %d records", applied)
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show mirror status",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to connect to Charm: %w", err)
		}
		defer client.Close()

		if id, err := client.ID(); err == nil {
			fmt.Printf("Charm ID: %s\n", id)
		}

		mirrored, err := client.MirroredCount()
		if err != nil {
			return fmt.Errorf("failed to read mirror: %w", err)
		}

		records, err := repo.ListProgress()
		if err != nil {
			return fmt.Errorf("failed to list progress: %w", err)
		}

		fmt.Printf("Local records:    %d\n", len(records))
		fmt.Printf("Mirrored records: %d\n", mirrored)
		if client.IsReadOnly() {
			fmt.Println("Mirror is read-only (locked by another process).")
		}
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	syncCmd.AddCommand(syncStatusCmd)
	rootCmd.AddCommand(syncCmd)
}
