package server

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockle/internal/crypto"
	"github.com/iudanet/stockle/internal/envelope"
	"github.com/iudanet/stockle/internal/models"
	"github.com/iudanet/stockle/internal/server/handlers"
	"github.com/iudanet/stockle/internal/server/metrics"
	"github.com/iudanet/stockle/internal/server/session"
	"github.com/iudanet/stockle/internal/server/storage/sqlite"
	"github.com/iudanet/stockle/pkg/api"
)

type testEnv struct {
	server *httptest.Server
	store  *sqlite.Storage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = handlers.EnsureDefaultAdmin(ctx, logger, store)
	require.NoError(t, err)

	key, err := crypto.GenerateKey(rand.Reader, 512)
	require.NoError(t, err)

	router := NewRouter(Dependencies{
		Logger:    logger,
		Key:       key,
		Sessions:  session.NewMemoryStore(),
		Users:     store,
		Inventory: store,
		DB:        store,
		Metrics:   metrics.New(prometheus.NewRegistry()),
		JWT:       handlers.JWTConfig{Secret: []byte("test-secret"), AccessTokenTTL: time.Minute},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testEnv{server: srv, store: store}
}

// testSession - клиент с установленным ключом сессии
type testSession struct {
	env      *testEnv
	clientID string
	key      []byte
}

func (e *testEnv) do(t *testing.T, clientID, method, path string, body []byte, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, e.server.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set(api.ClientIDHeader, clientID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *testEnv) handshake(t *testing.T, clientID string) *testSession {
	t.Helper()

	resp := e.do(t, clientID, http.MethodGet, "/connect", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pk api.PublicKeyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pk))

	key, err := crypto.GenerateSessionKey()
	require.NoError(t, err)
	pub := &crypto.PublicKey{E: int(pk.PublicKey[0].Int64()), N: pk.PublicKey[1]}
	c, err := crypto.EncryptOAEP(rand.Reader, pub, key)
	require.NoError(t, err)

	body, err := json.Marshal(api.HandshakeRequest{Data: c})
	require.NoError(t, err)
	resp = e.do(t, clientID, http.MethodPost, "/connect", body, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	msg, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, api.HandshakeEstablishedMessage, string(msg))

	return &testSession{env: e, clientID: clientID, key: key}
}

// call отправляет payload в конверте и возвращает статус и расшифрованный ответ
func (s *testSession) call(t *testing.T, method, path string, payload any, token string) (int, []byte) {
	t.Helper()
	var body []byte
	if payload != nil {
		env, err := envelope.Seal(payload, s.key)
		require.NoError(t, err)
		body, err = json.Marshal(env)
		require.NoError(t, err)
	}

	resp := s.env.do(t, s.clientID, method, path, body, token)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}
	plaintext, err := envelope.OpenBytes(raw, s.key)
	require.NoError(t, err, "response must be sealed: %s", raw)
	return resp.StatusCode, plaintext
}

func (s *testSession) login(t *testing.T, password string) string {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)

	status, body := s.call(t, http.MethodPost, "/login", api.LoginRequest{Username: "admin", PasswordHash: hash}, "")
	require.Equal(t, http.StatusOK, status, string(body))
	var tok api.TokenResponse
	require.NoError(t, json.Unmarshal(body, &tok))
	return tok.AccessToken
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string       { return &v }

func TestRouter_StockQueryEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	s := env.handshake(t, "till-1")

	batch := []models.ChangeEvent{
		{Barcode: "100", Name: strPtr("Blue Widget"), Category: strPtr("Tools"), Price: floatPtr(2.5), VAT: floatPtr(20), Type: models.ChangeAdd, Timestamp: 202410041400},
		{Barcode: "200", Name: strPtr("Gadget"), Category: strPtr("Toys"), Price: floatPtr(9), VAT: floatPtr(20), Type: models.ChangeAdd, Timestamp: 202410041401},
	}
	status, body := s.call(t, http.MethodPost, "/process_data", batch, "")
	require.Equal(t, http.StatusOK, status, string(body))
	var result api.ProcessResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 2, result.Added)

	status, body = s.call(t, http.MethodPost, "/stock", api.StockQuery{Query: "widget"}, "")
	require.Equal(t, http.StatusOK, status)
	var stock api.StockResponse
	require.NoError(t, json.Unmarshal(body, &stock))
	require.Len(t, stock.Items, 1)
	assert.Equal(t, "100", stock.Items[0].Barcode)
	assert.Equal(t, "Blue Widget", stock.Items[0].Name)
}

func TestRouter_OpenEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "anon", http.MethodGet, "/status", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, api.StatusReadyMessage, string(body))

	resp = env.do(t, "anon", http.MethodGet, "/sync_now", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, "anon", http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_RequiresSession(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/stock", "/categories"} {
		resp := env.do(t, "stranger", http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		var errResp api.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, api.ErrNoSessionMessage, errResp.Error)
	}

	// Ключ одного клиента не открывает сессию другому
	env.handshake(t, "till-1")
	resp := env.do(t, "till-2", http.MethodGet, "/categories", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_SyncNowFlow(t *testing.T) {
	env := newTestEnv(t)
	s := env.handshake(t, "stockctl")

	// Без токена триггер отклоняется, ответ тоже в конверте
	status, _ := s.call(t, http.MethodPost, "/sync_now", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := s.call(t, http.MethodPost, "/login", api.LoginRequest{Username: "admin", PasswordHash: crypto.SHA1Hex([]byte("wrong"))}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, api.InvalidCredentialsMessage, string(body))

	token := s.login(t, "admin")

	status, body = s.call(t, http.MethodPost, "/sync_now", nil, token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, api.SyncTriggeredMessage, string(body))

	// Флаг одноразовый
	resp := env.do(t, "till-1", http.MethodGet, "/sync_now", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = env.do(t, "till-1", http.MethodGet, "/sync_now", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_UpdateStockAndPassword(t *testing.T) {
	env := newTestEnv(t)
	s := env.handshake(t, "stockctl")

	status, _ := s.call(t, http.MethodPost, "/process_data", []models.ChangeEvent{
		{Barcode: "100", Name: strPtr("Widget"), Category: strPtr("Tools"), Price: floatPtr(1), VAT: floatPtr(0), Type: models.ChangeAdd, Timestamp: 202410041400},
	}, "")
	require.Equal(t, http.StatusOK, status)

	token := s.login(t, "admin")

	update := api.UpdateStockRequest{Products: []api.QuantityUpdate{{Barcode: "100", Quantity: 12}}}
	status, _ = s.call(t, http.MethodPut, "/stock", update, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := s.call(t, http.MethodPut, "/stock", update, token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, api.StockUpdatedMessage, string(body))

	items, err := env.store.SearchStock(context.Background(), "100")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.InDelta(t, 12.0, items[0].Quantity, 1e-9)

	status, body = s.call(t, http.MethodGet, "/categories", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"categories":["Tools"]}`, string(body))

	newHash := crypto.SHA1Hex([]byte("s3cret"))
	status, body = s.call(t, http.MethodPost, "/change_password", api.ChangePasswordRequest{PasswordHash: newHash}, token)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, api.PasswordChangedMessage, string(body))

	assert.NotEmpty(t, s.login(t, "s3cret"))
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(Config{ShutdownTimeout: time.Second}, http.NotFoundHandler(), logger)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/nothing")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
