// Package pos читает товары и продажи из базы кассовой программы (схема Aronium, SQLite).
package pos

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/stockle/internal/clock"
	"github.com/iudanet/stockle/internal/models"
)

const (
	// WatermarkLayout - формат Document.StockDate, с которым сравнивается отметка продаж
	WatermarkLayout = "2006-01-02 15:04:05.0000"

	// epochWatermark - отметка для первой выгрузки продаж
	epochWatermark = "1970-01-01 00:00:00"
)

const productsQuery = `
SELECT b.Value, p.Name, p.Price, t.Rate, pg.Name, p.DateUpdated
FROM Barcode b
LEFT JOIN Product p ON b.ProductId = p.Id
LEFT JOIN ProductGroup pg ON p.ProductGroupId = pg.Id
LEFT JOIN ProductTax pt ON p.Id = pt.ProductId
LEFT JOIN Tax t ON pt.TaxId = t.Id
WHERE b.Value IS NOT NULL AND p.Id IS NOT NULL`

const salesQuery = `
SELECT Barcode.Value, DocumentItem.Quantity, Document.StockDate
FROM DocumentItem
INNER JOIN Document ON DocumentItem.DocumentId = Document.Id
INNER JOIN (
	SELECT ProductId, MAX(Value) AS Value
	FROM Barcode
	GROUP BY ProductId
) AS Barcode ON DocumentItem.ProductId = Barcode.ProductId
WHERE Document.StockDate > ?
ORDER BY Document.StockDate`

// Reader читает базу кассы только на чтение
type Reader struct {
	db     *sql.DB
	clock  clock.Clock
	logger *slog.Logger
}

// Option настраивает Reader
type Option func(*Reader)

// WithClock задает источник времени для товаров без DateUpdated
func WithClock(c clock.Clock) Option {
	return func(r *Reader) {
		r.clock = c
	}
}

// Open открывает базу кассы по пути dbPath в режиме только для чтения
func Open(ctx context.Context, dbPath string, logger *slog.Logger, opts ...Option) (*Reader, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open POS database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping POS database: %w", err)
	}

	// Касса пишет в базу сама, нам хватит одного соединения
	db.SetMaxOpenConns(1)

	r := &Reader{
		db:     db,
		clock:  clock.System{},
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close закрывает соединение с базой кассы
func (r *Reader) Close() error {
	return r.db.Close()
}

// Products возвращает текущий снимок всех товаров, у которых есть штрихкод
func (r *Reader) Products(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, productsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var (
			barcode  string
			name     sql.NullString
			price    sql.NullFloat64
			rate     sql.NullFloat64
			category sql.NullString
			updated  any
		)
		if err := rows.Scan(&barcode, &name, &price, &rate, &category, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		updatedAt := r.clock.Now()
		if updated != nil {
			t, err := clock.ParsePOS(updated)
			if err != nil {
				r.logger.Warn("Unparsable product update time, using current time",
					"barcode", barcode, "error", err)
			} else {
				updatedAt = t
			}
		}

		products = append(products, models.Product{
			UpdatedAt: updatedAt,
			Barcode:   barcode,
			Name:      name.String,
			Category:  category.String,
			Price:     price.Float64,
			VAT:       rate.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}

// SalesSince возвращает продажи строго после отметки since, упорядоченные по времени.
// Нулевая отметка означает первую выгрузку: возвращаются все продажи.
func (r *Reader) SalesSince(ctx context.Context, since time.Time) ([]models.Sale, error) {
	watermark := epochWatermark
	if !since.IsZero() {
		watermark = since.UTC().Format(WatermarkLayout)
	}

	rows, err := r.db.QueryContext(ctx, salesQuery, watermark)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var (
			barcode  string
			quantity float64
			soldAt   any
		)
		if err := rows.Scan(&barcode, &quantity, &soldAt); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}

		t, err := clock.ParsePOS(soldAt)
		if err != nil {
			// Продажу без даты нельзя упорядочить, пропускаем
			r.logger.Warn("Skipping sale with unparsable date", "barcode", barcode, "error", err)
			continue
		}

		sales = append(sales, models.Sale{
			SoldAt:   t,
			Barcode:  barcode,
			Quantity: quantity,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sales: %w", err)
	}

	r.logger.Debug("Read sales from POS", "since", watermark, "count", len(sales))
	return sales, nil
}
