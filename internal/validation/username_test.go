package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		errMsg   string
	}{
		{name: "default admin", username: "admin"},
		{name: "till account with dash", username: "kassa-1"},
		{name: "dotted account", username: "shop.admin"},
		{name: "underscore and digits", username: "op_2024"},
		{name: "mixed case", username: "ShopAdmin"},
		{name: "max length", username: strings.Repeat("a", MaxUsernameLen)},
		{name: "empty", username: "", errMsg: "cannot be empty"},
		{name: "too short", username: "ab", errMsg: "3-32 characters"},
		{name: "too long", username: strings.Repeat("a", MaxUsernameLen+1), errMsg: "3-32 characters"},
		{name: "inner space", username: "shop admin", errMsg: "must not contain spaces"},
		{name: "trailing tab", username: "admin\t", errMsg: "must not contain spaces"},
		{name: "leading separator", username: ".admin", errMsg: "must start with a letter or digit"},
		{name: "at sign", username: "admin@shop", errMsg: "latin letters"},
		{name: "cyrillic", username: "кассир", errMsg: "latin letters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		errMsg   string
	}{
		{name: "default admin password", password: "admin"},
		{name: "long", password: "super_secret_password_123"},
		{name: "five cyrillic runes", password: "пароль"[:10]},
		{name: "empty", password: "", errMsg: "cannot be empty"},
		{name: "four chars", password: "pass", errMsg: "at least 5 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}
