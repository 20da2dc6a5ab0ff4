package handlers

import (
	"encoding/json"
	"log/slog"
	"math/big"
	"net/http"

	"github.com/iudanet/stockle/internal/crypto"
	"github.com/iudanet/stockle/internal/server/metrics"
	"github.com/iudanet/stockle/internal/server/session"
	"github.com/iudanet/stockle/pkg/api"
)

// ConnectHandler выполняет обмен ключом сессии
type ConnectHandler struct {
	responder
	key      *crypto.PrivateKey
	sessions session.Store
	metrics  *metrics.Metrics
}

// NewConnectHandler создает новый handler для /connect
func NewConnectHandler(logger *slog.Logger, key *crypto.PrivateKey, sessions session.Store, m *metrics.Metrics) *ConnectHandler {
	return &ConnectHandler{
		responder: responder{logger: logger},
		key:       key,
		sessions:  sessions,
		metrics:   m,
	}
}

// PublicKey обрабатывает GET /connect
// Возвращает открытый ключ сервера в виде [e, n]
func (h *ConnectHandler) PublicKey(w http.ResponseWriter, r *http.Request) {
	pub := h.key.PublicKey
	resp := api.PublicKeyResponse{}
	resp.PublicKey[0] = big.NewInt(int64(pub.E))
	resp.PublicKey[1] = pub.N

	h.sendJSON(w, resp, http.StatusOK)
}

// Handshake обрабатывает POST /connect
// Тело - RSA-шифротекст 32-байтного ключа сессии; ключ привязывается к идентификатору клиента
func (h *ConnectHandler) Handshake(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := GetClientID(ctx)
	if !ok {
		h.logger.ErrorContext(ctx, "client id not found in context")
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var req api.HandshakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Data == nil {
		h.logger.WarnContext(ctx, "failed to decode handshake request", slog.String("client_id", clientID))
		h.metrics.Handshake("bad_ciphertext")
		h.sendText(w, api.InvalidCiphertextMessage, http.StatusBadRequest)
		return
	}

	sessionKey, err := h.key.DecryptOAEP(req.Data)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to decrypt session key",
			slog.String("client_id", clientID),
			slog.Any("error", err))
		h.metrics.Handshake("bad_ciphertext")
		h.sendText(w, api.InvalidCiphertextMessage, http.StatusBadRequest)
		return
	}

	if len(sessionKey) != crypto.KeySize {
		h.logger.WarnContext(ctx, "invalid session key length",
			slog.String("client_id", clientID),
			slog.Int("length", len(sessionKey)))
		h.metrics.Handshake("bad_key_length")
		h.sendText(w, api.InvalidKeyLengthMessage, http.StatusBadRequest)
		return
	}

	if err := h.sessions.Put(ctx, clientID, sessionKey); err != nil {
		h.logger.ErrorContext(ctx, "failed to store session key", slog.Any("error", err))
		h.metrics.Handshake("store_error")
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "session key established", slog.String("client_id", clientID))
	h.metrics.Handshake("ok")

	h.sendText(w, api.HandshakeEstablishedMessage, http.StatusOK)
}
