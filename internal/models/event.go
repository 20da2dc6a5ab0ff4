package models

import (
	"fmt"

	"github.com/iudanet/stockle/internal/clock"
	"github.com/iudanet/stockle/internal/validation"
)

// ChangeType - тип изменения в журнале
type ChangeType string

const (
	ChangeAdd    ChangeType = "ADD"
	ChangeEdit   ChangeType = "EDIT"
	ChangeDelete ChangeType = "DELETE"
	ChangeSale   ChangeType = "SALE"
)

// Valid проверяет, что тип изменения известен
func (t ChangeType) Valid() bool {
	switch t {
	case ChangeAdd, ChangeEdit, ChangeDelete, ChangeSale:
		return true
	}
	return false
}

// ChangeEvent - единица синхронизации, отправляемая на сервер.
// Для ADD/EDIT заполнены поля товара, для SALE - Quantity, для DELETE только Barcode.
// Timestamp - логическая метка YYYYMMDDHHMM; у DELETE она равна 0.
type ChangeEvent struct {
	Name      *string    `json:"name,omitempty"`
	Price     *float64   `json:"price,omitempty"`
	VAT       *float64   `json:"vat,omitempty"`
	Category  *string    `json:"category,omitempty"`
	Quantity  *float64   `json:"quantity,omitempty"`
	Barcode   string     `json:"barcode"`
	Type      ChangeType `json:"change_type"`
	Timestamp int64      `json:"timeframe"`
}

// NewProductEvent создает ADD или EDIT событие из снимка товара
func NewProductEvent(p Product, t ChangeType) ChangeEvent {
	name, category := p.Name, p.Category
	price, vat := p.Price, p.VAT
	return ChangeEvent{
		Barcode:   p.Barcode,
		Name:      &name,
		Price:     &price,
		VAT:       &vat,
		Category:  &category,
		Type:      t,
		Timestamp: clock.Timestamp(p.UpdatedAt),
	}
}

// NewDeleteEvent создает DELETE событие; метка 0 ставит удаление перед прочими изменениями
func NewDeleteEvent(barcode string) ChangeEvent {
	return ChangeEvent{
		Barcode: barcode,
		Type:    ChangeDelete,
	}
}

// NewSaleEvent создает SALE событие из продажи
func NewSaleEvent(s Sale) ChangeEvent {
	qty := s.Quantity
	return ChangeEvent{
		Barcode:   s.Barcode,
		Quantity:  &qty,
		Type:      ChangeSale,
		Timestamp: clock.Timestamp(s.SoldAt),
	}
}

// Validate проверяет согласованность полей с типом изменения
func (e ChangeEvent) Validate() error {
	if e.Barcode == "" {
		return fmt.Errorf("barcode is required")
	}
	if err := validation.ValidateBarcode(e.Barcode); err != nil {
		return fmt.Errorf("invalid barcode %q: %w", e.Barcode, err)
	}
	switch e.Type {
	case ChangeAdd, ChangeEdit:
		if e.Price == nil {
			return fmt.Errorf("%s event for %s has no price", e.Type, e.Barcode)
		}
	case ChangeSale:
		if e.Quantity == nil {
			return fmt.Errorf("SALE event for %s has no quantity", e.Barcode)
		}
		if _, err := clock.FromTimestamp(e.Timestamp); err != nil {
			return fmt.Errorf("SALE event for %s: %w", e.Barcode, err)
		}
	case ChangeDelete:
	default:
		return fmt.Errorf("unknown change type %q", e.Type)
	}
	return nil
}

// StringValue возвращает значение указателя или пустую строку
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FloatValue возвращает значение указателя или 0
func FloatValue(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
