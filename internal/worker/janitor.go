// Package worker holds the background loops that run alongside the HTTP
// server for the life of the process.
package worker

import (
	"context"
	"log/slog"
	"time"
)

// JobPruner removes stale terminal jobs and reports how many went.
type JobPruner interface {
	Prune(retention time.Duration, now time.Time) int
}

// JobJanitor periodically prunes finished import jobs from the registry
// so polling ids don't accumulate forever.
type JobJanitor struct {
	jobs      JobPruner
	interval  time.Duration
	retention time.Duration
}

// NewJobJanitor creates a janitor that prunes jobs older than retention
// every interval.
func NewJobJanitor(jobs JobPruner, interval, retention time.Duration) *JobJanitor {
	return &JobJanitor{
		jobs:      jobs,
		interval:  interval,
		retention: retention,
	}
}

// Run starts the janitor loop and blocks until ctx is cancelled.
func (j *JobJanitor) Run(ctx context.Context) {
	slog.Info("worker started",
		"component", "worker",
		"worker", "job-janitor",
		"action", "worker_started",
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("worker stopped",
				"component", "worker",
				"worker", "job-janitor",
				"action", "worker_stopped",
				"reason", "context_cancelled",
			)
			return
		case <-ticker.C:
			if removed := j.jobs.Prune(j.retention, time.Now()); removed > 0 {
				slog.Info("pruned finished import jobs",
					"component", "worker",
					"worker", "job-janitor",
					"action", "jobs_pruned",
					"removed", removed,
				)
			}
		}
	}
}
