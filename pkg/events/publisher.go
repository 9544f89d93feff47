package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Publisher is the narrow emit-only interface the lifecycle manager consumes.
// The transport is injected; implementations must keep events for one job_id
// in publish order. Errors are for the caller's logs — a failed emit never
// fails the job.
type Publisher interface {
	Publish(ctx context.Context, tenantID, userID string, event *StatusEvent) error
}

// RedisPublisher pushes events onto per-user Redis pub/sub channels. A
// process-wide sequence counter per job gives subscribers a gap-detection
// handle; the publish itself happens under the counter lock so channel order
// matches sequence order.
type RedisPublisher struct {
	rdb    redis.UniversalClient
	logger *slog.Logger

	mu  sync.Mutex
	seq map[string]int64
}

// NewRedisPublisher creates a publisher over the given Redis client.
func NewRedisPublisher(rdb redis.UniversalClient, logger *slog.Logger) *RedisPublisher {
	return &RedisPublisher{
		rdb:    rdb,
		logger: logger.With("component", "status_publisher"),
		seq:    make(map[string]int64),
	}
}

// Publish implements Publisher.
func (p *RedisPublisher) Publish(ctx context.Context, tenantID, userID string, event *StatusEvent) error {
	event.stamp()

	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq[event.JobID]++
	event.Sequence = p.seq[event.JobID]
	if event.Terminal() {
		// The stream is closed; drop the counter so the map stays bounded.
		delete(p.seq, event.JobID)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling status event: %w", err)
	}
	if err := p.rdb.Publish(ctx, UserChannel(tenantID, userID), payload).Err(); err != nil {
		p.logger.Warn("Failed to publish status event",
			"job_id", event.JobID,
			"event_type", event.EventType,
			"error", err)
		return fmt.Errorf("publishing status event: %w", err)
	}
	return nil
}

// NopPublisher discards every event. Useful when the push channel is not
// configured.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, string, string, *StatusEvent) error { return nil }
