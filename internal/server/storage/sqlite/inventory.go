package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/stockle/internal/clock"
	"github.com/iudanet/stockle/internal/models"
	"github.com/iudanet/stockle/internal/server/storage"
)

// ApplyChangeSet применяет пакет в одной транзакции: удаления, добавления, правки, продажи.
// Ошибка любого шага откатывает весь пакет.
func (s *Storage) ApplyChangeSet(ctx context.Context, changes storage.ChangeSet) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, ev := range changes.Deletes {
		if _, err = tx.ExecContext(ctx, `DELETE FROM product WHERE barcode = ?`, ev.Barcode); err != nil {
			return fmt.Errorf("failed to delete product %s: %w", ev.Barcode, err)
		}
	}

	// ADD повторно присланного товара не должен ронять пакет: обновляем карточку, остаток не трогаем
	for _, ev := range changes.Adds {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO product (barcode, name, category, price_sell, vat, quantity)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(barcode) DO UPDATE SET
				name = excluded.name,
				category = excluded.category,
				price_sell = excluded.price_sell,
				vat = excluded.vat
		`,
			ev.Barcode,
			models.StringValue(ev.Name),
			models.StringValue(ev.Category),
			models.FloatValue(ev.Price),
			models.FloatValue(ev.VAT),
			models.FloatValue(ev.Quantity),
		)
		if err != nil {
			return fmt.Errorf("failed to add product %s: %w", ev.Barcode, err)
		}
	}

	// Поля, не пришедшие в событии, остаются прежними
	for _, ev := range changes.Edits {
		_, err = tx.ExecContext(ctx, `
			UPDATE product SET
				name = COALESCE(?, name),
				category = COALESCE(?, category),
				price_sell = COALESCE(?, price_sell),
				vat = COALESCE(?, vat)
			WHERE barcode = ?
		`,
			nullString(ev.Name),
			nullString(ev.Category),
			nullFloat(ev.Price),
			nullFloat(ev.VAT),
			ev.Barcode,
		)
		if err != nil {
			return fmt.Errorf("failed to edit product %s: %w", ev.Barcode, err)
		}
	}

	for _, ev := range changes.Sales {
		var soldAt string
		soldAt, err = clock.FormatSQL(ev.Timestamp)
		if err != nil {
			return fmt.Errorf("invalid sale time for %s: %w", ev.Barcode, err)
		}
		qty := models.FloatValue(ev.Quantity)

		_, err = tx.ExecContext(ctx,
			`INSERT INTO sold (barcode, amount_sold, date) VALUES (?, ?, ?)`,
			ev.Barcode, qty, soldAt,
		)
		if err != nil {
			return fmt.Errorf("failed to record sale of %s: %w", ev.Barcode, err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE product SET quantity = quantity - ? WHERE barcode = ?`,
			qty, ev.Barcode,
		)
		if err != nil {
			return fmt.Errorf("failed to decrement stock of %s: %w", ev.Barcode, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit change set: %w", err)
	}

	return nil
}

// SearchStock ищет товары по подстроке наименования, штрихкода или группы,
// а если запрос - число, то и по точному остатку
func (s *Storage) SearchStock(ctx context.Context, query string) ([]models.StockItem, error) {
	q := strings.TrimSpace(query)

	base := `
		SELECT product_id, barcode, name, category, price_sell, vat, quantity
		FROM product
	`

	var (
		rows *sql.Rows
		err  error
	)

	switch {
	case q == "":
		rows, err = s.db.QueryContext(ctx, base+` ORDER BY name, barcode`)
	default:
		like := "%" + q + "%"
		// NULL не равен ничему, поэтому нечисловой запрос не совпадает по остатку
		qty := sql.NullFloat64{}
		if f, perr := strconv.ParseFloat(q, 64); perr == nil {
			qty = sql.NullFloat64{Float64: f, Valid: true}
		}
		rows, err = s.db.QueryContext(ctx, base+`
			WHERE name LIKE ? OR barcode LIKE ? OR category LIKE ? OR quantity = ?
			ORDER BY name, barcode
		`, like, like, like, qty)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search stock: %w", err)
	}
	defer rows.Close()

	items := make([]models.StockItem, 0)
	for rows.Next() {
		var item models.StockItem
		if err := rows.Scan(
			&item.ID,
			&item.Barcode,
			&item.Name,
			&item.Category,
			&item.Price,
			&item.VAT,
			&item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return items, nil
}

// SetQuantities перезаписывает остатки; неизвестный штрихкод откатывает все изменения
func (s *Storage) SetQuantities(ctx context.Context, changes []storage.QuantityChange) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, c := range changes {
		var result sql.Result
		result, err = tx.ExecContext(ctx,
			`UPDATE product SET quantity = ? WHERE barcode = ?`,
			c.Quantity, c.Barcode,
		)
		if err != nil {
			return fmt.Errorf("failed to set quantity of %s: %w", c.Barcode, err)
		}
		if err = expectAffected(result, storage.ErrProductNotFound); err != nil {
			return fmt.Errorf("%s: %w", c.Barcode, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quantities: %w", err)
	}

	return nil
}

// Categories returns distinct non-empty product categories
func (s *Storage) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM product WHERE category <> '' ORDER BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
