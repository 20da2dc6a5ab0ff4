package handlers

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/iudanet/stockle/pkg/api"
)

// SyncNowHandler хранит одноразовый флаг "синхронизировать сейчас"
type SyncNowHandler struct {
	responder
	requested atomic.Bool
}

// NewSyncNowHandler создает новый handler для /sync_now
func NewSyncNowHandler(logger *slog.Logger) *SyncNowHandler {
	return &SyncNowHandler{
		responder: responder{logger: logger},
	}
}

// Check обрабатывает GET /sync_now
// Флаг сбрасывается при чтении: "Ready To Sync" возвращается один раз на каждый запрос синхронизации
func (h *SyncNowHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.requested.CompareAndSwap(true, false) {
		h.logger.InfoContext(r.Context(), "sync now request handed to till")
		h.sendText(w, api.SyncReadyMessage, http.StatusOK)
		return
	}

	h.sendText(w, api.SyncNotTriggeredMessage, http.StatusBadRequest)
}

// Trigger обрабатывает POST /sync_now
func (h *SyncNowHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	h.requested.Store(true)

	username, _ := GetUsername(r.Context())
	h.logger.InfoContext(r.Context(), "sync now triggered", slog.String("username", username))

	h.sendText(w, api.SyncTriggeredMessage, http.StatusOK)
}

// Pending сообщает, ожидает ли флаг чтения кассой
func (h *SyncNowHandler) Pending() bool {
	return h.requested.Load()
}
