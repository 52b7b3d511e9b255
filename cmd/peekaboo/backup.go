// ABOUTME: Backup commands for database snapshots.
// ABOUTME: Create, list, and restore timestamped copies.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/peekaboo/internal/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage database backups",
	Long: `Manage timestamped copies of the training database.

Snapshots are taken automatically whenever you log a session; these
commands let you snapshot, inspect, and roll back by hand. Only the
newest ten snapshots are kept.

EXAMPLES:

  $ peekaboo backup create
  $ peekaboo backup list
  $ peekaboo backup restore backup_20260823_090000.db`,
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Snapshot the database now",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := backups.Snapshot()
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		if path == "" {
			fmt.Println("No database yet; nothing to back up.")
			return nil
		}
		color.Green("✓ Backup created: %s", path)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available snapshots, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := backups.List(backup.MaxSnapshots)
		if err != nil {
			return fmt.Errorf("failed to list backups: %w", err)
		}

		if len(infos) == 0 {
			fmt.Println("No backups yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDATE")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\n", info.Name, info.ModTime.Format("2006-01-02 15:04:05"))
		}
		w.Flush()
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Replace the database with a snapshot",
	Long: `Replace the live database with the named snapshot.

A safety snapshot of the current database is taken first, so a bad
restore can itself be rolled back.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := backups.Restore(args[0]); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}
		color.Green("✓ Restored from %s", args[0])
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}
