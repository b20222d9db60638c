package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Locker serialises work on a key. release must be called exactly once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// MutexLocker is an in-process Locker. It only protects callers that share
// the same instance.
type MutexLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewMutexLocker() *MutexLocker {
	return &MutexLocker{slots: make(map[string]chan struct{})}
}

func (l *MutexLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}
	return ch
}

func (l *MutexLocker) Acquire(ctx context.Context, key string) (func(), error) {
	ch := l.slot(key)
	select {
	case ch <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-ch }) }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
	}
}

// releaseScript deletes the key only while it still holds our token, so a
// holder whose lease expired cannot drop the next holder's lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLockerConfig holds distributed lock settings
type RedisLockerConfig struct {
	Prefix        string
	TTL           time.Duration
	RetryInterval time.Duration
}

// DefaultRedisLockerConfig returns default lock settings
func DefaultRedisLockerConfig() RedisLockerConfig {
	return RedisLockerConfig{
		Prefix:        "hotel:lock:",
		TTL:           10 * time.Second,
		RetryInterval: 50 * time.Millisecond,
	}
}

// RedisLocker is a Locker shared by every process talking to the same Redis.
type RedisLocker struct {
	client redis.UniversalClient
	cfg    RedisLockerConfig
	log    *zap.Logger
}

func NewRedisLocker(client redis.UniversalClient, cfg RedisLockerConfig, log *zap.Logger) *RedisLocker {
	def := DefaultRedisLockerConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = def.RetryInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisLocker{client: client, cfg: cfg, log: log}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := l.cfg.Prefix + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.cfg.TTL).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("acquire lock %s: %w", key, ctxErr)
			}
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		timer := time.NewTimer(l.cfg.RetryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
		case <-timer.C:
		}
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			// the caller's context may already be done; the lease still has to go
			rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.cfg.TTL)
			defer cancel()
			if err := releaseScript.Run(rctx, l.client, []string{redisKey}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
				l.log.Warn("failed to release lock", zap.String("key", redisKey), zap.Error(err))
			}
		})
	}
	return release, nil
}
