// Package importer brings products into a project from Canva boards and
// board PDFs: link extraction, page scraping, and the asynchronous jobs
// the UI polls while an import runs.
package importer

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atelierworks/maquette/internal/types"
)

// Registry tracks import jobs in memory. Jobs are polled by id until they
// reach a terminal state; a background janitor prunes them afterwards.
type Registry struct {
	mu   sync.Mutex
	jobs map[string]*types.ImportJob
}

// NewRegistry creates an empty job registry.
func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*types.ImportJob)}
}

// Create registers a new queued job and returns a copy of it.
func (r *Registry) Create() types.ImportJob {
	now := time.Now().UTC()
	job := &types.ImportJob{
		ID:        uuid.NewString(),
		Status:    types.JobQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return *job
}

// Get returns a copy of the job, if known.
func (r *Registry) Get(id string) (types.ImportJob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return types.ImportJob{}, false
	}
	return *job, true
}

func (r *Registry) update(id string, fn func(*types.ImportJob)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	fn(job)
	job.UpdatedAt = time.Now().UTC()
}

// Start marks a job running with its total work count.
func (r *Registry) Start(id string, total int) {
	r.update(id, func(j *types.ImportJob) {
		j.Status = types.JobRunning
		j.TotalProducts = total
	})
}

// RecordImported increments the imported counter.
func (r *Registry) RecordImported(id string) {
	r.update(id, func(j *types.ImportJob) { j.ImportedProducts++ })
}

// RecordFailed increments the failed counter.
func (r *Registry) RecordFailed(id string) {
	r.update(id, func(j *types.ImportJob) { j.FailedProducts++ })
}

// Complete marks a job completed.
func (r *Registry) Complete(id string) {
	r.update(id, func(j *types.ImportJob) { j.Status = types.JobCompleted })
}

// Fail marks a job failed with a user-facing message.
func (r *Registry) Fail(id string, msg string) {
	r.update(id, func(j *types.ImportJob) {
		j.Status = types.JobFailed
		j.Error = msg
	})
}

// Prune removes terminal jobs whose last update is older than retention.
// It returns how many jobs were removed.
func (r *Registry) Prune(retention time.Duration, now time.Time) int {
	cutoff := now.Add(-retention)

	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int
	for id, job := range r.jobs {
		if job.Status.Terminal() && job.UpdatedAt.Before(cutoff) {
			delete(r.jobs, id)
			removed++
		}
	}
	return removed
}
