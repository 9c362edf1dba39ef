package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Track named events and the days remaining until they occur",
	Long: `countdown tracks named events with target dates and reports how many
days remain until each occurs.

  add      Create a new event
  list     List all events
  show     Show a single event
  delete   Delete an event
  serve    Run the HTTP API server

Events are stored in ~/.countdown/events.json by default; set
COUNTDOWN_STORAGE_DIR to override.`,
	SilenceUsage: true,
}
