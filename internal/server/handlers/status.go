package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/stockle/pkg/api"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusHandler обрабатывает проверку готовности API
type StatusHandler struct {
	responder
	db Pinger
}

// NewStatusHandler создает новый handler для /status
func NewStatusHandler(logger *slog.Logger, db Pinger) *StatusHandler {
	return &StatusHandler{
		responder: responder{logger: logger},
		db:        db,
	}
}

// Status обрабатывает GET /status
// Открытый эндпоинт: касса проверяет по нему доступность API перед синхронизацией
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.ErrorContext(r.Context(), "database is not available", slog.Any("error", err))
			h.sendText(w, "Database Unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	h.sendText(w, api.StatusReadyMessage, http.StatusOK)
}
