package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"oceanview/config"
)

const (
	ModeLocal = "local"
	ModeRedis = "redis"
)

// Locker serializes critical sections keyed by an arbitrary string, such as a
// room or reservation id. Acquire blocks until the key is held and returns a
// release func that must be called exactly once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// New selects the lock backend from configuration. Local mode covers a single
// process, redis mode coordinates across replicas.
func New(conf *config.Config, client *redis.Client) Locker {
	if conf.Lock.Mode == ModeRedis {
		log.Info().Msg("Using redis distributed locks")

		return NewRedisLocker(conf, client)
	}

	log.Info().Msg("Using in-process locks")

	return NewLocalLocker()
}

type localLocker struct {
	mutexes sync.Map
}

// NewLocalLocker returns a Locker backed by per-key in-process mutexes.
func NewLocalLocker() Locker {
	return &localLocker{}
}

func (l *localLocker) Acquire(_ context.Context, key string) (func(), error) {
	entry, _ := l.mutexes.LoadOrStore(key, &sync.Mutex{})

	mu, ok := entry.(*sync.Mutex)
	if !ok {
		return nil, fmt.Errorf("unexpected lock entry type for key %s", key)
	}

	mu.Lock()

	return mu.Unlock, nil
}

type redisLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
	tries  int
}

// NewRedisLocker returns a Locker backed by redsync mutexes on the primary
// redis connection.
func NewRedisLocker(conf *config.Config, client *redis.Client) Locker {
	pool := goredis.NewPool(client)

	return &redisLocker{
		rs:     redsync.New(pool),
		expiry: time.Duration(conf.Lock.ExpirySeconds) * time.Second,
		tries:  conf.Lock.Tries,
	}
}

func (l *redisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex("lock:"+key, redsync.WithExpiry(l.expiry), redsync.WithTries(l.tries))

	if err := mutex.LockContext(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to acquire distributed lock")

		return nil, fmt.Errorf("failed to acquire lock for %s: %w", key, err)
	}

	release := func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			log.Error().Err(err).Str("key", key).Msg("Failed to release distributed lock")
		}
	}

	return release, nil
}
