package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/intakehq/intake/pkg/models"
)

// FakeJobStore is an in-memory JobStore for tests. Transition atomicity is a
// single mutex; good enough for the concurrency tests exercise.
type FakeJobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job

	// FailTransitions, when set, makes ApplyTransition return this error.
	FailTransitions error
}

// NewFakeJobStore creates an empty store.
func NewFakeJobStore() *FakeJobStore {
	return &FakeJobStore{jobs: make(map[string]*Job)}
}

// Create implements JobStore.
func (f *FakeJobStore) Create(_ context.Context, j *Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[j.ID]; ok {
		return fmt.Errorf("job %s already exists", j.ID)
	}
	copied := *j
	copied.Status = models.JobStatusQueued
	copied.CreatedAt = time.Now().UTC()
	f.jobs[j.ID] = &copied
	return nil
}

// Get implements JobStore.
func (f *FakeJobStore) Get(_ context.Context, jobID string) (*Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	copied := *j
	return &copied, nil
}

// ApplyTransition implements JobStore.
func (f *FakeJobStore) ApplyTransition(_ context.Context, jobID, marker string, mutate func(*Job) error) (*Job, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailTransitions != nil {
		return nil, false, f.FailTransitions
	}

	j, ok := f.jobs[jobID]
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	if j.Applied(marker) {
		copied := *j
		return &copied, false, nil
	}

	candidate := *j
	if err := mutate(&candidate); err != nil {
		return nil, false, err
	}
	candidate.AppliedTransitions = append(append([]string{}, j.AppliedTransitions...), marker)
	f.jobs[jobID] = &candidate

	copied := candidate
	return &copied, true, nil
}

// ListStuckRunning implements JobStore.
func (f *FakeJobStore) ListStuckRunning(_ context.Context, cutoff time.Time, limit int) ([]*Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*Job
	for _, j := range f.jobs {
		if j.Status != models.JobStatusRunning {
			continue
		}
		if j.LastInteractionAt.After(cutoff) || j.LastInteractionAt.Equal(cutoff) {
			continue
		}
		copied := *j
		out = append(out, &copied)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
