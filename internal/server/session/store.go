// Package session хранит симметричные ключи сессий, установленные рукопожатием /connect.
package session

import (
	"context"
	"errors"
)

// ErrNoSession означает, что для клиента ключ сессии не установлен
var ErrNoSession = errors.New("session key not established")

//go:generate moq -out store_mock.go . Store

// Store хранит ключ сессии по идентификатору клиента
type Store interface {
	// Get возвращает ключ сессии; ErrNoSession, если его нет
	Get(ctx context.Context, clientID string) ([]byte, error)

	// Put сохраняет (или заменяет) ключ сессии клиента
	Put(ctx context.Context, clientID string, key []byte) error

	// Invalidate удаляет ключ сессии клиента.
	// Сервер сам ключи не отзывает: метод нужен для сброса сессии извне и в тестах.
	Invalidate(ctx context.Context, clientID string) error
}
