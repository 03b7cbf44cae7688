package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// JwtBlacklistStore records revoked tokens by their JWT ID until they expire.
type JwtBlacklistStore interface {
	// IsBlacklisted checks if the given JWT ID (jti) is blacklisted.
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	// AddToBlacklist adds the given JWT ID (jti) to the blacklist with an expiration time.
	AddToBlacklist(ctx context.Context, jti string, exp time.Time) error
}

// InMemoryBlacklistStore is a process-local JwtBlacklistStore.
type InMemoryBlacklistStore struct {
	blacklist map[string]time.Time
	mu        sync.RWMutex

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewInMemoryBlacklistStore returns a store that drops expired entries every interval.
// A non-positive interval uses five minutes. Call Stop to end the cleanup goroutine.
func NewInMemoryBlacklistStore(interval time.Duration) *InMemoryBlacklistStore {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	store := &InMemoryBlacklistStore{
		blacklist: make(map[string]time.Time),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go store.periodicallyCleanUp(interval)
	return store
}

func (s *InMemoryBlacklistStore) periodicallyCleanUp(interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.CleanUpExpired()
		case <-s.stop:
			return
		}
	}
}

// Stop ends the cleanup goroutine and waits for it. It is safe to call more than once.
func (s *InMemoryBlacklistStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

// CleanUpExpired removes entries whose token has expired.
func (s *InMemoryBlacklistStore) CleanUpExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for jti, exp := range s.blacklist {
		if exp.Before(now) {
			delete(s.blacklist, jti)
		}
	}
}

// IsBlacklisted implements JwtBlacklistStore.
func (s *InMemoryBlacklistStore) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.blacklist[jti]
	return exists, nil
}

// AddToBlacklist implements JwtBlacklistStore.
func (s *InMemoryBlacklistStore) AddToBlacklist(_ context.Context, jti string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blacklist[jti] = exp
	return nil
}

const redisBlacklistPrefix = "juggle:revoked:"

// RedisBlacklistStore shares revocations between server instances. Entries expire with the token.
type RedisBlacklistStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisBlacklistStore returns a store backed by client.
func NewRedisBlacklistStore(client *redis.Client) *RedisBlacklistStore {
	return &RedisBlacklistStore{client: client, now: time.Now}
}

// IsBlacklisted implements JwtBlacklistStore.
func (s *RedisBlacklistStore) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, redisBlacklistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

// AddToBlacklist implements JwtBlacklistStore. Already expired tokens are not stored.
func (s *RedisBlacklistStore) AddToBlacklist(ctx context.Context, jti string, exp time.Time) error {
	ttl := exp.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, redisBlacklistPrefix+jti, exp.Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
