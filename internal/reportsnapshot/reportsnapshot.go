// Package reportsnapshot keeps the snapshot history warm: a ticker worker
// recomputes the daily report and persists it, so the dashboard has data
// even when the platform API is down at view time.
package reportsnapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/aurelia-jewels/reports-manager/internal/dependency"
)

// Config holds configuration for the snapshot worker.
type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 1 * time.Hour,
	}
}

// Worker periodically computes and persists the daily report.
type Worker struct {
	source    dependency.CollectionSource
	snapshots dependency.Snapshots
	c         *Config
	now       func() time.Time
	ctx       context.Context
	stop      context.CancelFunc
}

// New creates a new snapshot worker.
func New(c *Config, source dependency.CollectionSource, snapshots dependency.Snapshots) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval == 0 {
		c.WorkerInterval = 1 * time.Hour
	}
	return &Worker{
		source:    source,
		snapshots: snapshots,
		c:         c,
		now:       time.Now,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("snapshot worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker gracefully.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("snapshot worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	return nil
}
