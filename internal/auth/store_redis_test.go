// internal/auth/store_redis_test.go
package auth

import (
	"context"
	"testing"
	"time"

	"business-registry/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionStore(t *testing.T, ttl time.Duration) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisSessionStore(client, ttl), mr
}

func testSession(token string) models.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return models.Session{
		Token:     token,
		User:      models.User{ID: "jane@example.com", Email: "jane@example.com", Name: "Jane"},
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestRedisSessionStore_RoundTrip(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Hour)
	session := testSession("token-1")

	require.NoError(t, store.Save(context.Background(), session))

	found, err := store.Find(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Equal(t, session.Token, found.Token)
	assert.Equal(t, session.User, found.User)
	assert.True(t, session.ExpiresAt.Equal(found.ExpiresAt))
}

func TestRedisSessionStore_MissingToken(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Hour)

	_, err := store.Find(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisSessionStore_ExpiresWithTTL(t *testing.T) {
	store, mr := newTestSessionStore(t, time.Minute)
	require.NoError(t, store.Save(context.Background(), testSession("token-1")))

	mr.FastForward(2 * time.Minute)

	_, err := store.Find(context.Background(), "token-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisSessionStore_Delete(t *testing.T) {
	store, _ := newTestSessionStore(t, time.Hour)
	require.NoError(t, store.Save(context.Background(), testSession("token-1")))

	require.NoError(t, store.Delete(context.Background(), "token-1"))

	_, err := store.Find(context.Background(), "token-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an unknown token is not an error.
	assert.NoError(t, store.Delete(context.Background(), "token-1"))
}
