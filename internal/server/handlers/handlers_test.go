package handlers

import (
	"context"
	"crypto/rand"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockle/internal/crypto"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError, // Only show errors in tests
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

var (
	testKeyOnce sync.Once
	testKey     *crypto.PrivateKey
	testKeyErr  error
)

// serverKey возвращает общий для тестов 512-битный ключ
func serverKey(t *testing.T) *crypto.PrivateKey {
	t.Helper()
	testKeyOnce.Do(func() {
		testKey, testKeyErr = crypto.GenerateKey(rand.Reader, 512)
	})
	require.NoError(t, testKeyErr)
	return testKey
}

func withClient(ctx context.Context, clientID string) context.Context {
	return WithClientID(ctx, clientID)
}
