package main

import (
	"fmt"
	"time"

	"countdown/config"
	"countdown/internal/domain"
	"countdown/internal/repository/jsonfile"
	"countdown/internal/services"
)

const serviceTimeout = 5 * time.Second

// buildService wires the file store into the event service. Every CLI
// invocation performs one full read-modify-write cycle against the store;
// nothing is cached between calls.
func buildService() (domain.EventService, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	store, err := jsonfile.New(cfg.StorageDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open event store: %w", err)
	}
	return services.NewEventService(store, serviceTimeout), cfg, nil
}
