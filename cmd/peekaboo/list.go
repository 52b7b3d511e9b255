// ABOUTME: List command showing saved session ratings.
// ABOUTME: Prints a table or the plan for one session.
package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/peekaboo/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved session ratings",
	Long: `List all saved session ratings in week/day order.

EXAMPLES:

  $ peekaboo list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := repo.ListProgress()
		if err != nil {
			return fmt.Errorf("failed to list progress: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No sessions logged yet. Use 'peekaboo log' to get started.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SESSION\tFLUIDITY\tENDURANCE\tPOWER\tDATE\tNOTES")
		for _, p := range records {
			fmt.Fprintf(w, "W%dD%d\t%d\t%d\t%d\t%s\t%s\n",
				p.Week, p.Day, p.Fluidity, p.Endurance, p.Power,
				p.Date.Format("2006-01-02"), p.Notes)
		}
		w.Flush()

		fmt.Printf("\n%d of %d sessions logged\n", len(records), catalog.Weeks*catalog.DaysPerWeek)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <week> <day>",
	Short: "Show the plan and rating for one session",
	Long: `Show the planned exercises for a session, plus your saved rating
if you have logged one.

EXAMPLES:

  $ peekaboo show 2 3`,
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
			return fmt.Errorf("unknown session: week %d day %d", week, day)
		}

		color.Cyan("Week %d, Day %d: %s", week, day, entry.Focus)
		fmt.Printf("Duration: %s\n", entry.Duration)
		fmt.Printf("%s\n", entry.Description)

		for _, sec := range entry.Sections() {
			if len(sec.Items) == 0 {
				continue
			}
			fmt.Printf("\n%s:\n", sec.Label)
			for _, item := range sec.Items {
				fmt.Printf("  - %s\n", item)
			}
		}

		if p, err := repo.GetProgress(week, day); err == nil {
			fmt.Printf("\nYour rating (%s): fluidity %d, endurance %d, power %d\n",
				p.Date.Format("2006-01-02"), p.Fluidity, p.Endurance, p.Power)
			if p.Notes != "" {
				fmt.Printf("Notes: %s\n", p.Notes)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
