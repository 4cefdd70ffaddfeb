// internal/auth/store_redis.go
package auth

import (
	"context"
	"encoding/json"
	"time"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/models"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "registration:session:"

// RedisSessionStore keeps sessions as JSON blobs with a TTL matching the
// session's expiry.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (s *RedisSessionStore) Save(ctx context.Context, session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return stderrors.NewStorageWriteFailedError(err)
	}
	if err := s.client.Set(ctx, sessionKey(session.Token), raw, s.ttl).Err(); err != nil {
		return stderrors.NewStorageWriteFailedError(err)
	}
	return nil
}

func (s *RedisSessionStore) Find(ctx context.Context, token string) (models.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return models.Session{}, ErrNotFound
	}
	if err != nil {
		return models.Session{}, stderrors.NewStorageReadFailedError(err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return models.Session{}, stderrors.NewStorageReadFailedError(err)
	}
	return session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return stderrors.NewStorageWriteFailedError(err)
	}
	return nil
}
