// ABOUTME: Stats command showing rating averages.
// ABOUTME: Prints overall and per-week means.
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/peekaboo/internal/catalog"
	"github.com/harperreed/peekaboo/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show rating averages",
	Long: `Show overall and per-week averages for fluidity, endurance, and
power, plus how far along the program you are.

EXAMPLES:

  $ peekaboo stats`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := repo.Stats()
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}

		if stats.Count == 0 {
			fmt.Println("No sessions logged yet. Use 'peekaboo log' to get started.")
			return nil
		}

		color.Cyan("Training Statistics")
		fmt.Printf("Sessions logged: %d of %d\n", stats.Count, catalog.Weeks*catalog.DaysPerWeek)
		fmt.Printf("Fluidity:  %.2f\n", stats.Fluidity)
		fmt.Printf("Endurance: %.2f\n", stats.Endurance)
		fmt.Printf("Power:     %.2f\n", stats.Power)

		weekly, err := repo.WeeklyStats()
		if err != nil {
			return fmt.Errorf("failed to compute weekly stats: %w", err)
		}

		if len(weekly) > 0 {
			fmt.Println()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WEEK\tSESSIONS\tFLUIDITY\tENDURANCE\tPOWER")
			for _, week := range storage.Weeks(weekly) {
				s := weekly[week]
				fmt.Fprintf(w, "%d\t%d\t%.2f\t%.2f\t%.2f\n",
					week, s.Count, s.Fluidity, s.Endurance, s.Power)
			}
			w.Flush()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
