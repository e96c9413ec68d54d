// File: services/assistant/sessionStore.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"venuely/models"

	"github.com/go-redis/redis/v8"
)

const chatSessionPrefix = "chat:sess:"

// SessionStore persists per-conversation dialogue state.
type SessionStore interface {
	Get(ctx context.Context, conversationID string) (*models.ChatSession, error)
	Set(ctx context.Context, conversationID string, sess *models.ChatSession) error
	Clear(ctx context.Context, conversationID string) error
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// Get returns a fresh idle session when none is stored.
func (s *RedisSessionStore) Get(ctx context.Context, conversationID string) (*models.ChatSession, error) {
	key := chatSessionPrefix + conversationID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return models.NewChatSession(), nil
	}
	if err != nil {
		return nil, err
	}
	var sess models.ChatSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, conversationID string, sess *models.ChatSession) error {
	key := chatSessionPrefix + conversationID
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, conversationID string) error {
	key := chatSessionPrefix + conversationID
	return s.client.Del(ctx, key).Err()
}
