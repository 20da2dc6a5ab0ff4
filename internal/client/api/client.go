// Package api реализует клиент API инвентаря поверх защищенного канала:
// рукопожатие RSA, затем обмен конвертами AES-CBC с ключом сессии.
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/stockle/internal/crypto"
	"github.com/iudanet/stockle/internal/envelope"
	"github.com/iudanet/stockle/pkg/api"
)

// maxResponseBody ограничивает размер читаемого ответа
const maxResponseBody = 16 << 20

// Client представляет HTTP клиент для взаимодействия с API инвентаря.
// Ключ сессии устанавливается лениво при первом защищенном запросе и
// переустанавливается, если сервер сообщает, что не знает его.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	random     io.Reader
	baseURL    string
	clientID   string
	token      string
	sessionKey []byte
	mu         sync.Mutex
}

// Option настраивает Client
type Option func(*Client)

// WithHTTPClient подменяет HTTP клиент
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout задает таймаут одного HTTP запроса
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient создает новый API клиент. clientID передается в X-Client-ID и
// определяет, к какому ключу сессии относятся запросы.
func NewClient(baseURL, clientID string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		logger:   logger,
		random:   rand.Reader,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL возвращает адрес API
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken задает access token для эндпоинтов, требующих авторизации
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// HasSession сообщает, установлен ли ключ сессии
func (c *Client) HasSession() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionKey != nil
}

// ResetSession забывает ключ сессии; следующий защищенный запрос выполнит рукопожатие
func (c *Client) ResetSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionKey = nil
}

// Connect выполняет рукопожатие: получает открытый ключ сервера,
// генерирует ключ сессии и передает его зашифрованным RSA
func (c *Client) Connect(ctx context.Context) error {
	status, body, err := c.send(ctx, http.MethodGet, "/connect", nil, "")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: public key request returned %d", ErrUnavailable, status)
	}

	var pk api.PublicKeyResponse
	if err := json.Unmarshal(body, &pk); err != nil {
		return fmt.Errorf("failed to decode public key: %w", err)
	}
	if pk.PublicKey[0] == nil || pk.PublicKey[1] == nil || !pk.PublicKey[0].IsInt64() {
		return fmt.Errorf("failed to decode public key: incomplete (e, n)")
	}
	pub := &crypto.PublicKey{E: int(pk.PublicKey[0].Int64()), N: pk.PublicKey[1]}

	key, err := crypto.GenerateSessionKey()
	if err != nil {
		return err
	}
	ciphertext, err := crypto.EncryptOAEP(c.random, pub, key)
	if err != nil {
		return fmt.Errorf("failed to encrypt session key: %w", err)
	}

	reqBody, err := json.Marshal(api.HandshakeRequest{Data: ciphertext})
	if err != nil {
		return fmt.Errorf("failed to marshal handshake: %w", err)
	}

	status, body, err = c.send(ctx, http.MethodPost, "/connect", reqBody, "")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		if status >= http.StatusInternalServerError {
			return fmt.Errorf("%w: handshake returned %d", ErrUnavailable, status)
		}
		return fmt.Errorf("%w: %s", ErrHandshake, strings.TrimSpace(string(body)))
	}

	c.mu.Lock()
	c.sessionKey = key
	c.mu.Unlock()

	c.logger.Debug("session key established", "client_id", c.clientID)
	return nil
}

// Do выполняет защищенный запрос: payload запечатывается ключом сессии,
// ответ расшифровывается в out (*string получает текст, *any - JSON или текст, иначе JSON).
// Если сервер не знает ключ сессии, выполняется повторное рукопожатие и один повтор запроса.
func (c *Client) Do(ctx context.Context, method, path string, payload, out any) error {
	err := c.doSealed(ctx, method, path, payload, out)
	if !errors.Is(err, ErrNoSession) {
		return err
	}

	c.logger.Info("server dropped session key, reconnecting", "client_id", c.clientID)
	c.ResetSession()
	return c.doSealed(ctx, method, path, payload, out)
}

func (c *Client) doSealed(ctx context.Context, method, path string, payload, out any) error {
	if !c.HasSession() {
		if err := c.Connect(ctx); err != nil {
			return err
		}
	}

	c.mu.Lock()
	key, token := c.sessionKey, c.token
	c.mu.Unlock()

	var reqBody []byte
	if payload != nil {
		env, err := envelope.Seal(payload, key)
		if err != nil {
			return err
		}
		if reqBody, err = json.Marshal(env); err != nil {
			return fmt.Errorf("failed to marshal envelope: %w", err)
		}
	}

	status, body, err := c.send(ctx, method, path, reqBody, token)
	if err != nil {
		return err
	}

	// 404 без ключа приходит открытым текстом
	if status == http.StatusNotFound && isNoSession(body) {
		return ErrNoSession
	}

	var plaintext []byte
	if len(bytes.TrimSpace(body)) > 0 {
		plaintext, err = envelope.OpenBytes(body, key)
		if err != nil {
			if status >= http.StatusInternalServerError {
				return fmt.Errorf("%w: status %d", ErrUnavailable, status)
			}
			return fmt.Errorf("failed to open response: %w", err)
		}
	}

	if status < 200 || status >= 300 {
		return statusError(status, plaintext)
	}

	return decodeInto(plaintext, out)
}

// send выполняет HTTP запрос и читает тело ответа.
// Сетевые ошибки оборачиваются в ErrUnavailable.
func (c *Client) send(ctx context.Context, method, path string, body []byte, token string) (int, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(api.ClientIDHeader, c.clientID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, ctx.Err()
		}
		return 0, nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: failed to read response body: %w", ErrUnavailable, err)
	}

	return resp.StatusCode, respBody, nil
}

func isNoSession(body []byte) bool {
	var errResp api.ErrorResponse
	return json.Unmarshal(body, &errResp) == nil && errResp.Error == api.ErrNoSessionMessage
}

// statusError строит ошибку из расшифрованного ответа не-2xx
func statusError(status int, plaintext []byte) error {
	msg := strings.TrimSpace(string(plaintext))
	var errResp api.ErrorResponse
	if json.Unmarshal(plaintext, &errResp) == nil && errResp.Error != "" {
		msg = errResp.Error
		if errResp.Message != "" {
			msg += ": " + errResp.Message
		}
	}

	se := &StatusError{StatusCode: status, Message: msg}
	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrUnauthorized, se)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", ErrUnavailable, se)
	}
	return se
}

func decodeInto(plaintext []byte, out any) error {
	switch v := out.(type) {
	case nil:
		return nil
	case *string:
		*v = string(plaintext)
		return nil
	case *any:
		*v = envelope.Decode(plaintext)
		return nil
	default:
		if err := json.Unmarshal(plaintext, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}
}
