package importer

import (
	"testing"
	"time"

	"github.com/atelierworks/maquette/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_JobLifecycle(t *testing.T) {
	r := NewRegistry()

	job := r.Create()
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, types.JobQueued, job.Status)

	r.Start(job.ID, 3)
	r.RecordImported(job.ID)
	r.RecordImported(job.ID)
	r.RecordFailed(job.ID)
	r.Complete(job.ID)

	got, ok := r.Get(job.ID)
	require.True(t, ok)
	assert.Equal(t, types.JobCompleted, got.Status)
	assert.Equal(t, 3, got.TotalProducts)
	assert.Equal(t, 2, got.ImportedProducts)
	assert.Equal(t, 1, got.FailedProducts)
}

func TestRegistry_GetUnknownJob(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Get("nope")
	assert.False(t, ok)
}

func TestRegistry_FailSetsMessage(t *testing.T) {
	r := NewRegistry()
	job := r.Create()

	r.Fail(job.ID, "board unreachable")

	got, ok := r.Get(job.ID)
	require.True(t, ok)
	assert.Equal(t, types.JobFailed, got.Status)
	assert.Equal(t, "board unreachable", got.Error)
}

func TestRegistry_PruneRemovesOnlyStaleTerminalJobs(t *testing.T) {
	r := NewRegistry()

	done := r.Create()
	r.Complete(done.ID)
	running := r.Create()
	r.Start(running.ID, 1)

	// Nothing is old enough yet.
	assert.Equal(t, 0, r.Prune(time.Hour, time.Now()))

	// Far in the future everything terminal is stale.
	removed := r.Prune(time.Hour, time.Now().Add(48*time.Hour))
	assert.Equal(t, 1, removed)

	_, ok := r.Get(done.ID)
	assert.False(t, ok)
	_, ok = r.Get(running.ID)
	assert.True(t, ok, "running jobs are never pruned")
}
