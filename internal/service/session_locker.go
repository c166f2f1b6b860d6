package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionLockPrefix = "pnba:session:"

var (
	refreshScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)

	releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)
)

type redisLocker struct {
	client *redis.Client
}

// NewRedisLocker returns a SessionLocker backed by SET NX with expiry. Only the
// token returned by Acquire can refresh or release a lock.
func NewRedisLocker(client *redis.Client) SessionLocker {
	return &redisLocker{client: client}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, sessionLockPrefix+key, token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to acquire session lock: %w", err)
	}
	if !ok {
		return "", ErrLockHeld
	}

	return token, nil
}

func (l *redisLocker) Refresh(ctx context.Context, key, token string, ttl time.Duration) error {
	n, err := refreshScript.Run(ctx, l.client, []string{sessionLockPrefix + key}, token, ttl.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("failed to refresh session lock: %w", err)
	}
	if n == 0 {
		return ErrLockHeld
	}
	return nil
}

func (l *redisLocker) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{sessionLockPrefix + key}, token).Err(); err != nil {
		return fmt.Errorf("failed to release session lock: %w", err)
	}
	return nil
}
