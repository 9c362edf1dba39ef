package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a single event",
	Long: `Show the details of a single event.

Example: countdown show "Birthday"`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	svc, _, err := buildService()
	if err != nil {
		return err
	}
	event, found, err := svc.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("event %q does not exist", args[0])
	}
	fmt.Println(formatEventLine(event))
	fmt.Printf("  Target date: %s\n", event.TargetDate)
	fmt.Printf("  Status:      %s\n", event.Status)
	fmt.Printf("  Created:     %s\n", event.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
