package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/events"
	"github.com/jhaabhiiishek/finmanBackend/pkg/eventbus"
	"github.com/redis/go-redis/v9"
)

// streamClient is the part of *redis.Client the bus uses.
type streamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Close() error
}

// RedisEventBus appends every event to a redis stream named after its type
// and then dispatches it to local handlers.
type RedisEventBus struct {
	*MemoryEventBus
	client    streamClient
	keyPrefix string
	maxLen    int64
	logger    *slog.Logger
}

// NewWithRedis connects to cfg.URL and returns a stream-backed bus.
func NewWithRedis(cfg *config.Redis, logger *slog.Logger) (*RedisEventBus, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, fmt.Errorf("redis event bus: url is required")
	}
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis event bus: invalid URL: %w", err)
	}
	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	opt.DialTimeout = cfg.DialTimeout
	opt.ReadTimeout = cfg.ReadTimeout
	opt.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis event bus: connection failed: %w", err)
	}
	return newRedisEventBus(client, cfg.KeyPrefix, logger), nil
}

func newRedisEventBus(client streamClient, keyPrefix string, logger *slog.Logger) *RedisEventBus {
	return &RedisEventBus{
		MemoryEventBus: NewWithMemory(logger),
		client:         client,
		keyPrefix:      keyPrefix,
		maxLen:         100000,
		logger:         logger.With("bus", "redis"),
	}
}

func (b *RedisEventBus) streamFor(eventType string) string {
	return b.keyPrefix + strings.ToLower(eventType)
}

// Emit publishes the event to its stream, then runs local handlers. The local
// handlers run even when the stream write fails.
func (b *RedisEventBus) Emit(ctx context.Context, event events.Event) error {
	payload, err := buildEnvelope(event)
	if err != nil {
		return fmt.Errorf("redis event bus: %w", err)
	}

	id, err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: b.streamFor(event.Type()),
		MaxLen: b.maxLen,
		Approx: true,
		Values: map[string]any{"event": string(payload)},
	}).Result()
	if err != nil {
		b.logger.Error("failed to emit event", "type", event.Type(), "error", err)
		_ = b.MemoryEventBus.Emit(ctx, event)
		return fmt.Errorf("redis event bus: emit failed: %w", err)
	}
	b.logger.Debug("event emitted", "type", event.Type(), "stream_id", id)

	return b.MemoryEventBus.Emit(ctx, event)
}

func (b *RedisEventBus) Close() error {
	return b.client.Close()
}

var _ eventbus.Bus = (*RedisEventBus)(nil)
