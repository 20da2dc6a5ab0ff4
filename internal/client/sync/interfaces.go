package sync

import (
	"context"
	"time"

	"github.com/iudanet/stockle/internal/models"
	"github.com/iudanet/stockle/pkg/api"
)

//go:generate moq -out api_mock.go . APIClient

// APIClient - одиночные вызовы API, которые делает координатор
type APIClient interface {
	// CheckAvailability сообщает, отвечает ли API
	CheckAvailability(ctx context.Context) bool

	// CheckSyncRequested забирает одноразовый флаг "sync now"
	CheckSyncRequested(ctx context.Context) bool

	// SendBatch отправляет пакет изменений; ошибка означает, что пакет не подтвержден
	SendBatch(ctx context.Context, events []models.ChangeEvent) (api.ProcessResult, error)
}

//go:generate moq -out source_mock.go . ProductSource

// ProductSource - источник товаров и продаж (база кассы)
type ProductSource interface {
	// Products возвращает текущий снимок товаров
	Products(ctx context.Context) ([]models.Product, error)

	// SalesSince возвращает продажи строго после since в порядке времени
	SalesSince(ctx context.Context, since time.Time) ([]models.Sale, error)
}
