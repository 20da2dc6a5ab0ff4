package storage

import (
	"context"

	"github.com/iudanet/stockle/internal/models"
)

// ChangeSet - пакет изменений, разложенный по видам в порядке применения:
// удаления, добавления, правки, продажи
type ChangeSet struct {
	Deletes []models.ChangeEvent
	Adds    []models.ChangeEvent
	Edits   []models.ChangeEvent
	Sales   []models.ChangeEvent
}

// Len возвращает общее число изменений
func (c ChangeSet) Len() int {
	return len(c.Deletes) + len(c.Adds) + len(c.Edits) + len(c.Sales)
}

// QuantityChange - ручная установка остатка товара
type QuantityChange struct {
	Barcode  string
	Quantity float64
}

//go:generate moq -out inventory_mock.go . InventoryStorage

// InventoryStorage defines interface for inventory persistence
type InventoryStorage interface {
	// ApplyChangeSet applies the whole change set in one transaction
	ApplyChangeSet(ctx context.Context, changes ChangeSet) error

	// SearchStock returns products whose name, barcode or category contains query,
	// or whose quantity equals query when it is a number. Empty query returns all products.
	SearchStock(ctx context.Context, query string) ([]models.StockItem, error)

	// SetQuantities overwrites stock levels
	// Returns ErrProductNotFound if any barcode is unknown
	SetQuantities(ctx context.Context, changes []QuantityChange) error

	// Categories returns distinct non-empty product categories
	Categories(ctx context.Context) ([]string, error)
}
