package session

import (
	"bytes"
	"context"
	"sync"
)

// MemoryStore - хранилище ключей в памяти процесса. Перезапуск сервера сбрасывает все сессии.
type MemoryStore struct {
	keys map[string][]byte
	mu   sync.RWMutex
}

// NewMemoryStore создает пустое хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{keys: make(map[string][]byte)}
}

// Get возвращает копию ключа сессии
func (s *MemoryStore) Get(_ context.Context, clientID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.keys[clientID]
	if !ok {
		return nil, ErrNoSession
	}
	return bytes.Clone(key), nil
}

// Put сохраняет копию ключа сессии
func (s *MemoryStore) Put(_ context.Context, clientID string, key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.keys[clientID] = bytes.Clone(key)
	return nil
}

// Invalidate удаляет ключ сессии
func (s *MemoryStore) Invalidate(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.keys, clientID)
	return nil
}

// Len возвращает число активных сессий
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}
