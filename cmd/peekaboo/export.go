// ABOUTME: Export and import commands for training data.
// ABOUTME: CSV, calendar, program text, and JSON/YAML dumps.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/peekaboo/internal/config"
	"github.com/harperreed/peekaboo/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <progress|calendar|program|json|yaml>",
	Short: "Export training data",
	Long: `Export training data in several formats.

FORMATS:

  progress   Saved ratings as CSV
  calendar   The full 30-session schedule as a calendar-import CSV,
             anchored at today and using your configured training time
  program    The complete program as plain text
  json       Full data dump as JSON
  yaml       Full data dump as YAML

By default output goes to stdout; use --output to write a file.

EXAMPLES:

  $ peekaboo export progress --output progress.csv
  $ peekaboo export calendar > schedule.csv
  $ peekaboo export json --output peekaboo.json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"progress", "calendar", "program", "json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)

		switch args[0] {
		case "progress":
			records, lerr := repo.ListProgress()
			if lerr != nil {
				return fmt.Errorf("failed to list progress: %w", lerr)
			}
			data, err = export.ProgressCSV(records)
		case "calendar":
			settings := config.Load(settingsPath)
			data, err = export.CalendarCSV(settings, time.Now())
		case "program":
			data = export.FullProgramText()
		case "json":
			dump, derr := export.NewDump(repo)
			if derr != nil {
				return fmt.Errorf("failed to gather data: %w", derr)
			}
			data, err = dump.JSON()
		case "yaml":
			dump, derr := export.NewDump(repo)
			if derr != nil {
				return fmt.Errorf("failed to gather data: %w", derr)
			}
			data, err = dump.YAML()
		default:
			return fmt.Errorf("unknown format: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "" {
			cmd.OutOrStdout().Write(data)
			return nil
		}

		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON data dump",
	Long: `Import a JSON dump previously produced by 'peekaboo export json'.

Imported records go through the normal save path, so a record for a
session you have already rated replaces the existing rating.

EXAMPLES:

  $ peekaboo import peekaboo.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		if _, err := backups.Snapshot(); err != nil {
			fmt.Printf("Warning: backup failed: %v\n", err)
		}

		if err := export.Import(repo, data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
