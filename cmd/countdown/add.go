package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <date>",
	Short: "Create a new event",
	Long: `Create a new countdown event with a target date.

Example: countdown add "Birthday" 2026-03-15`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	svc, _, err := buildService()
	if err != nil {
		return err
	}
	event, err := svc.Create(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("Created %q, %d days remaining\n", event.Name, event.RemainingDays)
	return nil
}
