package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/intakehq/intake/pkg/config"
)

func TestWorkerPollInterval(t *testing.T) {
	w := &Worker{
		config: &config.QueueConfig{
			PollInterval:       time.Second,
			PollIntervalJitter: 200 * time.Millisecond,
		},
	}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 800*time.Millisecond)
		assert.LessOrEqual(t, d, 1200*time.Millisecond)
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	w := &Worker{
		config: &config.QueueConfig{
			PollInterval: time.Second,
		},
	}

	assert.Equal(t, time.Second, w.pollInterval())
}

func TestWorkerHealth(t *testing.T) {
	w := NewWorker("pod-0-worker-1", "pod-0", nil, config.DefaultQueueConfig(), nil, nil)

	h := w.Health()
	assert.Equal(t, "pod-0-worker-1", h.ID)
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentJobID)
	assert.Zero(t, h.JobsProcessed)

	w.setStatus(WorkerStatusWorking, "job-7")
	h = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), h.Status)
	assert.Equal(t, "job-7", h.CurrentJobID)
	assert.WithinDuration(t, time.Now(), h.LastActivity, time.Second)
}

func TestWorkerStopTwiceDoesNotPanic(t *testing.T) {
	w := NewWorker("w", "pod-0", nil, config.DefaultQueueConfig(), nil, nil)

	assert.NotPanics(t, func() {
		w.Stop()
		w.Stop()
	})
}
