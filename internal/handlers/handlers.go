package handlers

import (
	"context"

	"playlist-builder/internal/aggregator"
	"playlist-builder/internal/database"
	"playlist-builder/internal/runner"
	"playlist-builder/internal/startup"
)

// Builder runs playlist builds.
type Builder interface {
	BuildWith(ctx context.Context, root string, order aggregator.Order) (runner.Result, error)
	GetHealthStatus() runner.HealthStatus
}

// RunStore lists recorded runs.
type RunStore interface {
	ListRuns(ctx context.Context, limit int) ([]database.Run, error)
}

// Handlers holds the dependencies shared by all HTTP handlers.
type Handlers struct {
	builder  Builder
	runs     RunStore
	mediaDir string
	order    aggregator.Order
}

// New creates the HTTP handlers.
func New(builder Builder, runs RunStore, config *startup.Config) *Handlers {
	return &Handlers{
		builder:  builder,
		runs:     runs,
		mediaDir: config.MediaDir,
		order:    config.CombineOrder,
	}
}
