package crypto

import (
	"crypto/subtle"
	"fmt"
)

// HashPassword хеширует пароль SHA-1 без соли и возвращает hex-строку.
// Используется на клиенте перед отправкой и на сервере при заведении пользователя.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return SHA1Hex([]byte(password)), nil
}

// VerifyPasswordHash сравнивает присланный hex-хеш пароля с сохраненным
func VerifyPasswordHash(passwordHash, storedHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	if storedHash == "" {
		return fmt.Errorf("stored hash cannot be empty")
	}

	if subtle.ConstantTimeCompare([]byte(passwordHash), []byte(storedHash)) != 1 {
		return fmt.Errorf("invalid credentials")
	}

	return nil
}
