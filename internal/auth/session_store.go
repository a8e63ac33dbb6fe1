package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// ErrSessionNotFound is returned for unknown or deleted session ids.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore maps session ids to account snapshots.
type SessionStore interface {
	Get(ctx context.Context, id string) (domain.Account, error)
	Put(ctx context.Context, id string, account domain.Account) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// MemorySessionStore keeps sessions in process memory.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Account
}

// NewMemorySessionStore returns an empty store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domain.Account)}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.sessions[id]
	if !ok {
		return domain.Account{}, ErrSessionNotFound
	}
	return account, nil
}

func (s *MemorySessionStore) Put(_ context.Context, id string, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = account
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemorySessionStore) Ping(_ context.Context) error {
	return nil
}

// Len reports the number of live sessions.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// RedisSessionStore keeps sessions as JSON values under prefix+id. Keys have
// no TTL; logout deletes them.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionStore returns a store on client.
func NewRedisSessionStore(client *redis.Client, prefix string) *RedisSessionStore {
	return &RedisSessionStore{client: client, prefix: prefix}
}

func (s *RedisSessionStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (domain.Account, error) {
	val, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Account{}, ErrSessionNotFound
		}
		return domain.Account{}, err
	}
	var account domain.Account
	if err := json.Unmarshal(val, &account); err != nil {
		return domain.Account{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return account, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, id string, account domain.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(id), data, 0).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

func (s *RedisSessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
