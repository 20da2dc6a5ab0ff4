package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockle/internal/config"
	"github.com/iudanet/stockle/internal/server/handlers"
)

func TestJWTConfig(t *testing.T) {
	cfg := jwtConfig(config.JWTConfig{Secret: "server-secret", TTL: 10 * time.Minute})

	assert.Equal(t, []byte("server-secret"), cfg.Secret)
	assert.Equal(t, 10*time.Minute, cfg.AccessTokenTTL)

	token, expiresIn, err := handlers.GenerateAccessToken(cfg, "user-1", "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(600), expiresIn)

	claims, err := handlers.ValidateAccessToken(jwtConfig(config.JWTConfig{Secret: "server-secret"}), token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	_, err = handlers.ValidateAccessToken(jwtConfig(config.JWTConfig{Secret: "other"}), token)
	assert.Error(t, err)
}
