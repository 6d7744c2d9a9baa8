package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/lawfirm-api/internal/domain/booking"
)

const slotLockTTL = 10 * time.Second

// RedisSlotLocker serialises booking attempts for the same timestamp across
// API instances. The database unique index remains the source of truth.
type RedisSlotLocker struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.SlotLocker = (*RedisSlotLocker)(nil)

func NewRedisSlotLocker(client *redis.Client) *RedisSlotLocker {
	return &RedisSlotLocker{client: client, ttl: slotLockTTL}
}

// NewRedisClient parses a redis:// URL and pings the server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// releaseScript deletes the key only while it still holds the caller's token,
// so an expired lock taken over by another request is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func (l *RedisSlotLocker) Acquire(ctx context.Context, at time.Time) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, SlotLockKey(at), token, l.ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

func (l *RedisSlotLocker) Release(ctx context.Context, at time.Time, token string) error {
	return releaseScript.Run(ctx, l.client, []string{SlotLockKey(at)}, token).Err()
}

func SlotLockKey(at time.Time) string {
	return "lock:booking:" + at.UTC().Format(time.RFC3339)
}

// NoopSlotLocker always grants the lock. It is used when Redis is not
// configured.
type NoopSlotLocker struct{}

var _ domain.SlotLocker = NoopSlotLocker{}

func (NoopSlotLocker) Acquire(context.Context, time.Time) (string, bool, error) {
	return "", true, nil
}

func (NoopSlotLocker) Release(context.Context, time.Time, string) error { return nil }
