package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"concierge/models"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore keeps sessions in Redis with native expiry. It is the
// drop-in alternative to the memory store for deployments that want sessions
// to survive a restart.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore wraps an existing Redis client.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func sessionKey(sessionID string) string {
	return "conversation:" + sessionID
}

func (s *RedisSessionStore) Get(sessionID string) (*models.ConversationSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", sessionID, err)
	}

	var sess models.ConversationSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", sessionID, err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(session *models.ConversationSession) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", session.SessionID, err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.SessionID, err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(sessionID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}
