package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранит ключи сессий в Redis, чтобы несколько экземпляров API делили сессии.
// Ключи привязаны к отпечатку RSA-ключа сервера: после генерации нового ключа старые сессии не находятся.
type RedisStore struct {
	client    redis.UniversalClient
	namespace string
	ttl       time.Duration
}

// NewRedisStore создает хранилище. fingerprint - отпечаток открытого ключа сервера,
// ttl - время жизни ключа сессии (0 - без ограничения).
func NewRedisStore(client redis.UniversalClient, fingerprint string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:    client,
		namespace: "stockle:session:" + fingerprint + ":",
		ttl:       ttl,
	}
}

func (s *RedisStore) key(clientID string) string {
	return s.namespace + clientID
}

// Get возвращает ключ сессии
func (s *RedisStore) Get(ctx context.Context, clientID string) ([]byte, error) {
	key, err := s.client.Get(ctx, s.key(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to get session key: %w", err)
	}
	return key, nil
}

// Put сохраняет ключ сессии
func (s *RedisStore) Put(ctx context.Context, clientID string, key []byte) error {
	if err := s.client.Set(ctx, s.key(clientID), key, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session key: %w", err)
	}
	return nil
}

// Invalidate удаляет ключ сессии
func (s *RedisStore) Invalidate(ctx context.Context, clientID string) error {
	if err := s.client.Del(ctx, s.key(clientID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session key: %w", err)
	}
	return nil
}
