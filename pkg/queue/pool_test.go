package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRegisterAndCancelJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)

	assert.True(t, pool.CancelJob("job-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	assert.False(t, pool.CancelJob("unknown"))
}

func TestPoolUnregisterJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)

	assert.True(t, pool.CancelJob("job-1"))

	pool.UnregisterJob("job-1")

	assert.False(t, pool.CancelJob("job-1"))
}

func TestPoolGetActiveJobIDs(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	ids := pool.getActiveJobIDs()
	assert.Empty(t, ids)

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterJob("job-1", cancel1)
	pool.RegisterJob("job-2", cancel2)

	ids = pool.getActiveJobIDs()
	assert.ElementsMatch(t, []string{"job-1", "job-2"}, ids)
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:     make(chan struct{}),
		activeJobs: make(map[string]context.CancelFunc),
	}

	assert.NotPanics(t, func() {
		pool.Stop()
		pool.Stop()
	})
}
