// ABOUTME: Serve command starting the web dashboard.
// ABOUTME: Runs the HTTP server until interrupted.
package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/peekaboo/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the HTTP server with the training dashboard and JSON API.

The dashboard shows the current session plan, rating forms, progress
charts, and backup management. Press Ctrl+C to stop.

EXAMPLES:

  $ peekaboo serve
  $ peekaboo serve --addr :9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.New(repo, backups, settingsPath)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		color.Green("Serving on http://localhost%s", serveAddr)
		if err := srv.ListenAndServe(ctx, serveAddr); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		fmt.Println("Server stopped.")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
