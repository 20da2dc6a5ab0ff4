package handlers

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockle/internal/crypto"
	"github.com/iudanet/stockle/internal/server/metrics"
	"github.com/iudanet/stockle/internal/server/session"
	"github.com/iudanet/stockle/pkg/api"
)

func TestConnectHandler_PublicKey(t *testing.T) {
	key := serverKey(t)
	handler := NewConnectHandler(setupTestLogger(), key, session.NewMemoryStore(), nil)

	w := httptest.NewRecorder()
	handler.PublicKey(w, httptest.NewRequest(http.MethodGet, "/connect", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp api.PublicKeyResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(crypto.PublicExponent), resp.PublicKey[0].Int64())
	assert.Equal(t, 0, key.N.Cmp(resp.PublicKey[1]))

	// Закрытая экспонента не должна попасть в ответ
	assert.NotContains(t, w.Body.String(), key.D.String())
}

func handshakeBody(t *testing.T, c *big.Int) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(api.HandshakeRequest{Data: c})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestConnectHandler_Handshake(t *testing.T) {
	key := serverKey(t)

	sessionKey, err := crypto.GenerateSessionKey()
	require.NoError(t, err)
	good, err := crypto.EncryptOAEP(rand.Reader, &key.PublicKey, sessionKey)
	require.NoError(t, err)
	short, err := crypto.EncryptOAEP(rand.Reader, &key.PublicKey, sessionKey[:16])
	require.NoError(t, err)

	tests := []struct {
		body        func() *bytes.Reader
		name        string
		wantBody    string
		wantStatus  int
		wantSession bool
	}{
		{
			name:        "valid session key",
			body:        func() *bytes.Reader { return handshakeBody(t, good) },
			wantStatus:  http.StatusOK,
			wantBody:    api.HandshakeEstablishedMessage,
			wantSession: true,
		},
		{
			name:       "wrong key length",
			body:       func() *bytes.Reader { return handshakeBody(t, short) },
			wantStatus: http.StatusBadRequest,
			wantBody:   api.InvalidKeyLengthMessage,
		},
		{
			name:       "ciphertext out of range",
			body:       func() *bytes.Reader { return handshakeBody(t, key.N) },
			wantStatus: http.StatusBadRequest,
			wantBody:   api.InvalidCiphertextMessage,
		},
		{
			name:       "not a number",
			body:       func() *bytes.Reader { return bytes.NewReader([]byte(`{"Data":"abc"}`)) },
			wantStatus: http.StatusBadRequest,
			wantBody:   api.InvalidCiphertextMessage,
		},
		{
			name:       "missing data",
			body:       func() *bytes.Reader { return bytes.NewReader([]byte(`{}`)) },
			wantStatus: http.StatusBadRequest,
			wantBody:   api.InvalidCiphertextMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := session.NewMemoryStore()
			handler := NewConnectHandler(setupTestLogger(), key, store, metrics.New(prometheus.NewRegistry()))

			req := httptest.NewRequest(http.MethodPost, "/connect", tt.body())
			req = req.WithContext(withClient(req.Context(), "till-1"))
			w := httptest.NewRecorder()

			handler.Handshake(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())

			stored, err := store.Get(context.Background(), "till-1")
			if tt.wantSession {
				require.NoError(t, err)
				assert.Equal(t, sessionKey, stored)
			} else {
				assert.ErrorIs(t, err, session.ErrNoSession)
			}
		})
	}
}

func TestConnectHandler_Handshake_NoClientID(t *testing.T) {
	handler := NewConnectHandler(setupTestLogger(), serverKey(t), session.NewMemoryStore(), nil)

	w := httptest.NewRecorder()
	handler.Handshake(w, httptest.NewRequest(http.MethodPost, "/connect", bytes.NewReader([]byte(`{}`))))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
