// ABOUTME: Log command recording self-ratings for a session.
// ABOUTME: Upserts the rating and logs the completion.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/peekaboo/internal/catalog"
	"github.com/harperreed/peekaboo/internal/models"
)

var (
	logFluidity  int
	logEndurance int
	logPower     int
	logNotes     string
)

var logCmd = &cobra.Command{
	Use:   "log <week> <day>",
	Short: "Record ratings for a training session",
	Long: `Record your self-ratings for one training session.

Each session is rated 1-10 on three dimensions: fluidity (smoothness
of movement), endurance (stamina through the session), and power
(force behind strikes). Logging the same session again replaces the
previous rating.

EXAMPLES:

  $ peekaboo log 1 1 --fluidity 7 --endurance 8 --power 6
  $ peekaboo log 3 4 -f 8 -e 7 -p 9 --notes "slipping felt natural"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		week, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid week: %s", args[0])
		}
		day, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid day: %s", args[1])
		}

		entry, ok := catalog.Get(week, day)
		if !ok {
			return fmt.Errorf("unknown session: week %d day %d (weeks 1-%d, days 1-%d)",
				week, day, catalog.Weeks, catalog.DaysPerWeek)
		}

		for _, r := range []int{logFluidity, logEndurance, logPower} {
			if r < 1 || r > 10 {
				return fmt.Errorf("ratings must be between 1 and 10")
			}
		}

		p := models.NewProgressRecord(week, day, logFluidity, logEndurance, logPower)
		if logNotes != "" {
			p.WithNotes(logNotes)
		}

		if err := repo.UpsertProgress(p); err != nil {
			return fmt.Errorf("failed to save progress: %w", err)
		}
		if err := repo.LogCompletion(week, day, catalog.NominalMinutes(entry.Duration), p.Date); err != nil {
			return fmt.Errorf("failed to log completion: %w", err)
		}

		if _, err := backups.Snapshot(); err != nil {
			fmt.Printf("Warning: backup failed: %v\n", err)
		}

		color.Green("✓ Logged W%dD%d (%s): fluidity %d, endurance %d, power %d",
			week, day, entry.Focus, logFluidity, logEndurance, logPower)
		return nil
	},
}

func init() {
	logCmd.Flags().IntVarP(&logFluidity, "fluidity", "f", 0, "fluidity rating (1-10)")
	logCmd.Flags().IntVarP(&logEndurance, "endurance", "e", 0, "endurance rating (1-10)")
	logCmd.Flags().IntVarP(&logPower, "power", "p", 0, "power rating (1-10)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "optional session notes")
	rootCmd.AddCommand(logCmd)
}
