package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Имя оператора: латиница, цифры и разделители "._-", начинается с буквы или цифры.
// Кассовые учетки обычно выглядят как "kassa-1" или "shop.admin".
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32

	// MinPasswordLen совпадает с длиной пароля admin, создаваемого при первом запуске
	MinPasswordLen = 5
)

// ValidateUsername проверяет имя учетной записи оператора
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return fmt.Errorf("username cannot be empty")
	case strings.IndexFunc(username, unicode.IsSpace) >= 0:
		return fmt.Errorf("username must not contain spaces")
	case len(username) < MinUsernameLen || len(username) > MaxUsernameLen:
		return fmt.Errorf("username must be %d-%d characters long", MinUsernameLen, MaxUsernameLen)
	case !usernamePattern.MatchString(username):
		return fmt.Errorf("username may contain latin letters, digits and \"._-\" and must start with a letter or digit")
	}
	return nil
}

// ValidatePassword проверяет пароль оператора перед хешированием
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len([]rune(password)) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}
