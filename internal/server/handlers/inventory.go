package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/iudanet/stockle/internal/models"
	"github.com/iudanet/stockle/internal/server/inventory"
	"github.com/iudanet/stockle/internal/server/metrics"
	"github.com/iudanet/stockle/internal/server/storage"
	"github.com/iudanet/stockle/pkg/api"
)

// maxBatchBody ограничивает размер расшифрованного пакета изменений
const maxBatchBody = 4 << 20

// InventoryHandler обрабатывает складские запросы
type InventoryHandler struct {
	responder
	store     storage.InventoryStorage
	processor *inventory.Processor
	metrics   *metrics.Metrics
}

// NewInventoryHandler создает новый handler склада
func NewInventoryHandler(logger *slog.Logger, store storage.InventoryStorage, m *metrics.Metrics) *InventoryHandler {
	return &InventoryHandler{
		responder: responder{logger: logger},
		store:     store,
		processor: inventory.NewProcessor(store, logger),
		metrics:   m,
	}
}

// ProcessData обрабатывает POST /process_data
// Тело - JSON-список событий, отсортированный кассой по логической метке
func (h *InventoryHandler) ProcessData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBatchBody))
	if err != nil {
		h.sendError(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	// Пакет обязан быть списком
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		h.metrics.Batch("invalid")
		h.sendText(w, api.InvalidDataMessage, http.StatusBadRequest)
		return
	}

	var events []models.ChangeEvent
	if err := json.Unmarshal(trimmed, &events); err != nil {
		h.logger.WarnContext(ctx, "failed to decode change batch", slog.Any("error", err))
		h.metrics.Batch("invalid")
		h.sendText(w, api.InvalidDataMessage, http.StatusBadRequest)
		return
	}

	result, err := h.processor.Process(ctx, events)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to process change batch", slog.Any("error", err))
		h.metrics.Batch("error")
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.metrics.Batch("ok")
	h.metrics.EventsApplied(string(models.ChangeDelete), result.Deleted)
	h.metrics.EventsApplied(string(models.ChangeAdd), result.Added)
	h.metrics.EventsApplied(string(models.ChangeEdit), result.Edited)
	h.metrics.EventsApplied(string(models.ChangeSale), result.Sales)

	clientID, _ := GetClientID(ctx)
	h.logger.InfoContext(ctx, "change batch processed",
		slog.String("client_id", clientID),
		slog.Int("events", len(events)),
		slog.Int("skipped", result.Skipped))

	h.sendJSON(w, result, http.StatusOK)
}

// SearchStock обрабатывает GET и POST /stock
// Пустое тело или пустой запрос возвращают весь склад
func (h *InventoryHandler) SearchStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.StockQuery
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	items, err := h.store.SearchStock(ctx, req.Query)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to search stock", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.StockResponse{Items: items}, http.StatusOK)
}

// UpdateStock обрабатывает PUT /stock
// Ручная корректировка остатков; неизвестный штрихкод отклоняет весь запрос
func (h *InventoryHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Products) == 0 {
		h.sendError(w, "updated_products is required", http.StatusBadRequest)
		return
	}

	changes := make([]storage.QuantityChange, 0, len(req.Products))
	for _, p := range req.Products {
		changes = append(changes, storage.QuantityChange{Barcode: p.Barcode, Quantity: p.Quantity})
	}

	if err := h.store.SetQuantities(ctx, changes); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			h.sendError(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update stock", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	username, _ := GetUsername(ctx)
	h.logger.InfoContext(ctx, "stock quantities updated",
		slog.String("username", username),
		slog.Int("products", len(changes)))

	h.sendText(w, api.StockUpdatedMessage, http.StatusOK)
}

// Categories обрабатывает GET /categories
func (h *InventoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.Categories(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list categories", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.CategoriesResponse{Categories: categories}, http.StatusOK)
}
