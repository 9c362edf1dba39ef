package main

import (
	"fmt"
	"strings"

	"countdown/internal/domain"
)

// formatEventLine renders a single event for CLI display.
func formatEventLine(e *domain.Event) string {
	if e.Status == domain.StatusExpired {
		return fmt.Sprintf("%s (expired)", e.Name)
	}
	if e.RemainingDays == 1 {
		return fmt.Sprintf("%s: 1 day remaining", e.Name)
	}
	return fmt.Sprintf("%s: %d days remaining", e.Name, e.RemainingDays)
}

// formatEventList renders a numbered list of events.
func formatEventList(events []*domain.Event) string {
	if len(events) == 0 {
		return "No events yet."
	}
	lines := make([]string, 0, len(events))
	for i, e := range events {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, formatEventLine(e)))
	}
	return strings.Join(lines, "\n")
}
