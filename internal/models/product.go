package models

import "time"

// Product представляет снимок товара из базы кассы.
// Ключ - штрихкод; UpdatedAt служит источником логической метки изменения.
type Product struct {
	UpdatedAt time.Time `json:"updated_at"` // время последнего изменения в кассе
	Barcode   string    `json:"barcode"`    // штрихкод (уникальный ключ)
	Name      string    `json:"name"`       // наименование
	Category  string    `json:"category"`   // группа товара
	Price     float64   `json:"price"`      // цена продажи
	VAT       float64   `json:"vat"`        // ставка НДС
}

// Equal сравнивает содержимое снимков: штрихкод, наименование, цену, НДС и группу.
// UpdatedAt не участвует: смена только отметки времени не считается правкой.
func (p Product) Equal(other Product) bool {
	return p.Barcode == other.Barcode &&
		p.Name == other.Name &&
		p.Price == other.Price &&
		p.VAT == other.VAT &&
		p.Category == other.Category
}

// StockItem - строка складского остатка на сервере
type StockItem struct {
	Barcode  string  `json:"barcode"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	VAT      float64 `json:"vat"`
	Quantity float64 `json:"quantity"`
	ID       int64   `json:"id"`
}

// Sale - продажа, прочитанная из базы кассы
type Sale struct {
	SoldAt   time.Time `json:"sold_at"`
	Barcode  string    `json:"barcode"`
	Quantity float64   `json:"quantity"`
}
