package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/goleak"

	"juggle-backend/internal/database"
)

func TestInMemoryBlacklist_AddAndCheck(t *testing.T) {
	store := NewInMemoryBlacklistStore(time.Minute)
	defer store.Stop()
	ctx := context.Background()

	isBlacklisted, err := store.IsBlacklisted(ctx, "non-existent-token")
	require.NoError(t, err)
	assert.False(t, isBlacklisted)

	exp := time.Now().Add(time.Hour)
	require.NoError(t, store.AddToBlacklist(ctx, "blacklisted-token", exp))

	isBlacklisted, err = store.IsBlacklisted(ctx, "blacklisted-token")
	require.NoError(t, err)
	assert.True(t, isBlacklisted)

	store.mu.RLock()
	assert.Equal(t, exp, store.blacklist["blacklisted-token"])
	store.mu.RUnlock()
}

func TestInMemoryBlacklist_UpdateExpiration(t *testing.T) {
	store := NewInMemoryBlacklistStore(time.Minute)
	defer store.Stop()
	ctx := context.Background()

	exp2 := time.Now().Add(2 * time.Hour)
	require.NoError(t, store.AddToBlacklist(ctx, "test-token", time.Now().Add(time.Hour)))
	require.NoError(t, store.AddToBlacklist(ctx, "test-token", exp2))

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.Len(t, store.blacklist, 1)
	assert.Equal(t, exp2, store.blacklist["test-token"])
}

func TestInMemoryBlacklist_CleanUpExpired(t *testing.T) {
	store := NewInMemoryBlacklistStore(time.Minute)
	defer store.Stop()
	ctx := context.Background()

	expiredTime := time.Now().Add(-time.Hour)
	require.NoError(t, store.AddToBlacklist(ctx, "expired-token-1", expiredTime))
	require.NoError(t, store.AddToBlacklist(ctx, "expired-token-2", expiredTime))
	require.NoError(t, store.AddToBlacklist(ctx, "valid-token", time.Now().Add(time.Hour)))

	store.CleanUpExpired()

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.Len(t, store.blacklist, 1)
	assert.Contains(t, store.blacklist, "valid-token")
}

func TestInMemoryBlacklist_PeriodicCleanUp(t *testing.T) {
	store := NewInMemoryBlacklistStore(10 * time.Millisecond)
	defer store.Stop()
	require.NoError(t, store.AddToBlacklist(context.Background(), "soon", time.Now().Add(20*time.Millisecond)))

	assert.Eventually(t, func() bool {
		revoked, _ := store.IsBlacklisted(context.Background(), "soon")
		return !revoked
	}, time.Second, 10*time.Millisecond)
}

func TestInMemoryBlacklist_StopLeavesNoGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	store := NewInMemoryBlacklistStore(time.Millisecond)
	store.Stop()
	store.Stop()
}

func TestInMemoryBlacklist_ConcurrentAccess(t *testing.T) {
	store := NewInMemoryBlacklistStore(time.Millisecond)
	defer store.Stop()
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			jti := fmt.Sprintf("token-%d", id)
			assert.NoError(t, store.AddToBlacklist(ctx, jti, exp))
			revoked, err := store.IsBlacklisted(ctx, jti)
			assert.NoError(t, err)
			assert.True(t, revoked)
		}(i)
	}
	wg.Wait()
}

func TestRedisBlacklistStore(t *testing.T) {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	client, err := database.NewRedisClient(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisBlacklistStore(client)

	revoked, err := store.IsBlacklisted(ctx, "jti-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.AddToBlacklist(ctx, "jti-a", time.Now().Add(time.Hour)))
	revoked, err = store.IsBlacklisted(ctx, "jti-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, redisBlacklistPrefix+"jti-a").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 59*time.Minute)

	require.NoError(t, store.AddToBlacklist(ctx, "jti-old", time.Now().Add(-time.Minute)))
	revoked, err = store.IsBlacklisted(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)
}
