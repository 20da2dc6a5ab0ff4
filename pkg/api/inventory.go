package api

import "github.com/iudanet/stockle/internal/models"

// Тексты открытых эндпоинтов
const (
	StatusReadyMessage      = "API Ready for transfer"
	SyncReadyMessage        = "Ready To Sync"
	SyncNotTriggeredMessage = "Not Triggered!"
	SyncTriggeredMessage    = "Sync Now Triggered"
)

// Тексты ответов защищенных эндпоинтов
const (
	InvalidDataMessage        = "Invalid data provided"
	InvalidCredentialsMessage = "Invalid or Incorrect Credentials"
	PasswordChangedMessage    = "Password Changed Successfully"
	StockUpdatedMessage       = "Success"
)

// StockQuery - запрос поиска по складу
type StockQuery struct {
	Query string `json:"query"`
}

// StockResponse - результат поиска по складу
type StockResponse struct {
	Items []models.StockItem `json:"items"`
}

// QuantityUpdate - новое количество товара по штрихкоду
type QuantityUpdate struct {
	Barcode  string  `json:"barcode"`
	Quantity float64 `json:"quantity"`
}

// UpdateStockRequest - запрос ручной корректировки остатков
type UpdateStockRequest struct {
	Products []QuantityUpdate `json:"updated_products"`
}

// CategoriesResponse - список групп товаров
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ProcessResult - итог применения пакета изменений на сервере
type ProcessResult struct {
	Deleted int `json:"deleted"`
	Added   int `json:"added"`
	Edited  int `json:"edited"`
	Sales   int `json:"sales"`
	Skipped int `json:"skipped"`
}
