package api

// LoginRequest представляет запрос на аутентификацию (передается внутри конверта)
type LoginRequest struct {
	Username     string `json:"username"`      // username пользователя
	PasswordHash string `json:"password_hash"` // SHA-1 хеш пароля (hex-encoded)
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	Username    string `json:"username"`     // username пользователя
	AccessToken string `json:"access_token"` // JWT access token
	ExpiresIn   int64  `json:"expires_in"`   // время жизни access token в секундах
}

// ChangePasswordRequest представляет запрос на смену пароля текущего пользователя
type ChangePasswordRequest struct {
	PasswordHash string `json:"password_hash"` // SHA-1 хеш нового пароля (hex-encoded)
}

// MessageResponse представляет ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
