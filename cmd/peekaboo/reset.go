// ABOUTME: Reset command wiping all saved progress.
// ABOUTME: Snapshots the database first, then deletes everything.
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved progress",
	Long: `Delete every saved rating and completion.

A snapshot of the database is taken first, so the data can be
recovered with 'peekaboo backup restore'.

EXAMPLES:

  $ peekaboo reset
  $ peekaboo reset --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			fmt.Print("This deletes all saved progress. Continue? [y/N] ")
			reader := bufio.NewReader(cmd.InOrStdin())
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		path, err := backups.Snapshot()
		if err != nil {
			return fmt.Errorf("backup before reset failed: %w", err)
		}

		if err := repo.DeleteAllProgress(); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		color.Green("✓ All progress deleted")
		if path != "" {
			fmt.Printf("Backup saved to %s\n", path)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}
