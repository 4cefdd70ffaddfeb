// internal/registration/store_redis.go
package registration

import (
	"context"
	"encoding/json"
	"fmt"

	stderrors "business-registry/internal/common/errors"
	"business-registry/internal/common/logger"
	"business-registry/internal/models"

	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "registration:draft:"

// RedisDraftStore persists drafts as JSON blobs under a per-user key.
type RedisDraftStore struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisDraftStore(client *redis.Client, log logger.Logger) *RedisDraftStore {
	return &RedisDraftStore{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "draft-store"}),
	}
}

func draftKey(userID string) string {
	return draftKeyPrefix + userID
}

func (s *RedisDraftStore) Read(ctx context.Context, userID string) (models.RegistrationData, error) {
	raw, err := s.client.Get(ctx, draftKey(userID)).Result()
	if err == redis.Nil {
		return models.EmptyRegistrationData(), nil
	}
	if err != nil {
		return models.EmptyRegistrationData(), stderrors.NewStorageReadFailedError(err)
	}

	var draft models.RegistrationData
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		// A corrupted blob degrades to a fresh draft rather than locking the
		// user out of the wizard.
		s.logger.Warn("discarding unparseable draft", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
		return models.EmptyRegistrationData(), nil
	}
	return draft, nil
}

func (s *RedisDraftStore) Update(ctx context.Context, userID string, patch models.RegistrationData) (models.RegistrationData, error) {
	current, err := s.Read(ctx, userID)
	if err != nil {
		return models.EmptyRegistrationData(), err
	}

	merged := current.Merge(patch)
	raw, err := json.Marshal(merged)
	if err != nil {
		return models.EmptyRegistrationData(), stderrors.NewStorageWriteFailedError(fmt.Errorf("marshal draft: %w", err))
	}
	if err := s.client.Set(ctx, draftKey(userID), raw, 0).Err(); err != nil {
		return models.EmptyRegistrationData(), stderrors.NewStorageWriteFailedError(err)
	}
	return merged, nil
}

func (s *RedisDraftStore) Reset(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, draftKey(userID)).Err(); err != nil {
		return stderrors.NewStorageWriteFailedError(err)
	}
	return nil
}
