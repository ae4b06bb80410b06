package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	MaxLoginFailures = 5
	LoginLockout     = 15 * time.Minute
)

// AttemptCounter counts failed logins per key within a sliding TTL.
type AttemptCounter interface {
	Count(ctx context.Context, key string) (int, error)
	Increment(ctx context.Context, key string, ttl time.Duration) (int, error)
	Reset(ctx context.Context, key string) error
}

type RedisAttemptCounter struct {
	redis *redis.Client
}

func NewRedisAttemptCounter(client *redis.Client) *RedisAttemptCounter {
	return &RedisAttemptCounter{redis: client}
}

func attemptKey(key string) string {
	return fmt.Sprintf("login-failures:%s", key)
}

func (s *RedisAttemptCounter) Count(ctx context.Context, key string) (int, error) {
	count, err := s.redis.Get(ctx, attemptKey(key)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return count, err
}

func (s *RedisAttemptCounter) Increment(ctx context.Context, key string, ttl time.Duration) (int, error) {
	pipe := s.redis.TxPipeline()
	incr := pipe.Incr(ctx, attemptKey(key))
	pipe.Expire(ctx, attemptKey(key), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(incr.Val()), nil
}

func (s *RedisAttemptCounter) Reset(ctx context.Context, key string) error {
	return s.redis.Del(ctx, attemptKey(key)).Err()
}

type memoryAttempt struct {
	count   int
	expires time.Time
}

type MemoryAttemptCounter struct {
	mu       sync.Mutex
	attempts map[string]*memoryAttempt
	now      func() time.Time
}

func NewMemoryAttemptCounter() *MemoryAttemptCounter {
	return &MemoryAttemptCounter{attempts: make(map[string]*memoryAttempt), now: time.Now}
}

func (s *MemoryAttemptCounter) Count(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attempt, ok := s.attempts[key]
	if !ok || s.now().After(attempt.expires) {
		delete(s.attempts, key)
		return 0, nil
	}
	return attempt.count, nil
}

func (s *MemoryAttemptCounter) Increment(_ context.Context, key string, ttl time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attempt, ok := s.attempts[key]
	if !ok || s.now().After(attempt.expires) {
		attempt = &memoryAttempt{}
		s.attempts[key] = attempt
	}
	attempt.count++
	attempt.expires = s.now().Add(ttl)
	return attempt.count, nil
}

func (s *MemoryAttemptCounter) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, key)
	return nil
}
