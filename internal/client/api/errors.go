package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable означает, что API недоступен (сеть, таймаут, 5xx)
	ErrUnavailable = errors.New("inventory API unavailable")

	// ErrUnauthorized означает отсутствие или недействительность access token
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNoSession означает, что сервер не знает ключ сессии клиента
	ErrNoSession = errors.New("session key not established")

	// ErrHandshake означает, что сервер отклонил ключ сессии
	ErrHandshake = errors.New("session handshake rejected")

	// ErrRetriesExhausted возвращается Retrier после исчерпания попыток
	ErrRetriesExhausted = errors.New("retries exhausted, server unreachable")
)

// StatusError - ответ сервера с кодом вне 2xx
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}
