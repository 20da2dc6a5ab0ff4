package models

import "time"

// User представляет пользователя inventory API
type User struct {
	LastLogin    *time.Time `json:"last_login,omitempty"` // время последнего входа
	CreatedAt    time.Time  `json:"created_at"`           // время создания
	ID           string     `json:"id"`                   // UUID пользователя
	Username     string     `json:"username"`             // уникальный username
	PasswordHash string     `json:"password_hash"`        // SHA-1 хеш пароля (hex, без соли)
}
