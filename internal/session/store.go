// Package session maps opaque visitor session keys to stable conversation
// identifiers for the legacy chat-start handshake. No transcript or any
// other chat state is stored.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix       = "chat:cid:"
	conversationTTL = 30 * 24 * time.Hour
)

// Store returns the conversation ID bound to a session key, minting one on
// first use.
type Store interface {
	ConversationID(ctx context.Context, sessionKey string) (string, error)
}

// RedisStore keeps conversation IDs in Redis so they survive restarts and
// are shared across replicas.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// ConversationID implements Store.
func (s *RedisStore) ConversationID(ctx context.Context, sessionKey string) (string, error) {
	key := keyPrefix + sessionKey

	cid, err := s.client.Get(ctx, key).Result()
	if err == nil {
		return cid, nil
	}
	if !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("failed to load conversation id: %w", err)
	}

	cid = uuid.NewString()
	if setErr := s.client.Set(ctx, key, cid, conversationTTL).Err(); setErr != nil {
		return "", fmt.Errorf("failed to store conversation id: %w", setErr)
	}
	return cid, nil
}

// MemoryStore is the single-process fallback used when Redis is not
// configured.
type MemoryStore struct {
	mu  sync.Mutex
	ids map[string]string
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ids: make(map[string]string),
	}
}

// ConversationID implements Store.
func (s *MemoryStore) ConversationID(_ context.Context, sessionKey string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cid, ok := s.ids[sessionKey]; ok {
		return cid, nil
	}

	cid := uuid.NewString()
	s.ids[sessionKey] = cid
	return cid, nil
}
