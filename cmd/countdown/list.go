package main

import (
	"fmt"
	"sort"

	"countdown/internal/domain"

	"github.com/spf13/cobra"
)

var listStatus string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all events",
	Long:  `List all events with their current status and remaining days.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (ACTIVE, CURRENT, EXPIRED)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	svc, _, err := buildService()
	if err != nil {
		return err
	}
	var events []*domain.Event
	if listStatus != "" {
		events, err = svc.FilterByStatus(cmd.Context(), listStatus)
	} else {
		events, err = svc.List(cmd.Context())
	}
	if err != nil {
		return err
	}
	// Store order is map iteration order; sort by remaining days so the
	// soonest event comes first.
	sort.Slice(events, func(i, j int) bool {
		return events[i].RemainingDays < events[j].RemainingDays
	})
	fmt.Println(formatEventList(events))
	return nil
}
