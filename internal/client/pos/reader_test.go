package pos

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockle/internal/clock"
	"github.com/iudanet/stockle/internal/models"
)

const aroniumSchema = `
CREATE TABLE ProductGroup (Id INTEGER PRIMARY KEY, Name TEXT);
CREATE TABLE Product (Id INTEGER PRIMARY KEY, Name TEXT, Price REAL, ProductGroupId INTEGER, DateUpdated TEXT);
CREATE TABLE Barcode (Id INTEGER PRIMARY KEY, ProductId INTEGER, Value TEXT);
CREATE TABLE Tax (Id INTEGER PRIMARY KEY, Name TEXT, Rate REAL);
CREATE TABLE ProductTax (ProductId INTEGER, TaxId INTEGER);
CREATE TABLE Document (Id INTEGER PRIMARY KEY, StockDate TEXT);
CREATE TABLE DocumentItem (Id INTEGER PRIMARY KEY, DocumentId INTEGER, ProductId INTEGER, Quantity REAL);

INSERT INTO ProductGroup VALUES (1, 'Tools');
INSERT INTO Tax VALUES (1, 'Standard', 20);
INSERT INTO Product VALUES (1, 'Widget', 2.5, 1, '2024-10-04 14:24:48.1000');
INSERT INTO Product VALUES (2, 'Gadget', 10, NULL, NULL);
INSERT INTO ProductTax VALUES (1, 1);
INSERT INTO Barcode VALUES (1, 1, '5000000000017');
INSERT INTO Barcode VALUES (2, 2, '5000000000024');
INSERT INTO Barcode VALUES (3, 2, '5000000000031');
INSERT INTO Barcode VALUES (4, NULL, NULL);
INSERT INTO Barcode VALUES (5, 99, '5000000000048');

INSERT INTO Document VALUES (1, '2024-10-04 14:24:48.1000');
INSERT INTO Document VALUES (2, '2024-10-05 09:00:00.0000');
INSERT INTO DocumentItem VALUES (1, 1, 1, 2);
INSERT INTO DocumentItem VALUES (2, 2, 2, 1.5);
`

// newPOSDatabase создает файл базы кассы со схемой Aronium и тестовыми данными
func newPOSDatabase(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pos.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(aroniumSchema)
	require.NoError(t, err)

	return path
}

func newTestReader(t *testing.T, opts ...Option) *Reader {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r, err := Open(context.Background(), newPOSDatabase(t), logger, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	return r
}

func TestReader_Products(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)
	r := newTestReader(t, WithClock(&clock.ClockMock{
		NowFunc: func() time.Time { return now },
	}))

	products, err := r.Products(context.Background())
	require.NoError(t, err)

	byBarcode := make(map[string]models.Product, len(products))
	for _, p := range products {
		byBarcode[p.Barcode] = p
	}

	// Штрихкод без значения и штрихкод без товара не попадают в снимок
	require.Len(t, byBarcode, 3)

	widget := byBarcode["5000000000017"]
	assert.Equal(t, "Widget", widget.Name)
	assert.Equal(t, "Tools", widget.Category)
	assert.InDelta(t, 2.5, widget.Price, 1e-9)
	assert.InDelta(t, 20.0, widget.VAT, 1e-9)
	assert.Equal(t, int64(202410041424), clock.Timestamp(widget.UpdatedAt))

	// Товар с двумя штрихкодами дает две записи; пустые группа, налог и дата
	for _, barcode := range []string{"5000000000024", "5000000000031"} {
		gadget := byBarcode[barcode]
		assert.Equal(t, "Gadget", gadget.Name, barcode)
		assert.Empty(t, gadget.Category)
		assert.Zero(t, gadget.VAT)
		assert.Equal(t, now, gadget.UpdatedAt)
	}
}

func TestReader_SalesSince(t *testing.T) {
	r := newTestReader(t)

	tests := []struct {
		name     string
		since    time.Time
		barcodes []string
	}{
		{
			name:     "zero watermark returns everything",
			since:    time.Time{},
			barcodes: []string{"5000000000017", "5000000000031"},
		},
		{
			name:     "watermark equal to a sale excludes it",
			since:    time.Date(2024, 10, 4, 14, 24, 48, 100_000_000, time.UTC),
			barcodes: []string{"5000000000031"},
		},
		{
			name:     "watermark after all sales",
			since:    time.Date(2024, 10, 5, 9, 0, 0, 0, time.UTC),
			barcodes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales, err := r.SalesSince(context.Background(), tt.since)
			require.NoError(t, err)

			var got []string
			for _, s := range sales {
				got = append(got, s.Barcode)
			}
			assert.Equal(t, tt.barcodes, got)
		})
	}
}

func TestReader_SalesFields(t *testing.T) {
	r := newTestReader(t)

	sales, err := r.SalesSince(context.Background(), time.Time{})
	require.NoError(t, err)
	require.Len(t, sales, 2)

	// Для товара с несколькими штрихкодами берется наибольший
	assert.Equal(t, "5000000000031", sales[1].Barcode)
	assert.InDelta(t, 1.5, sales[1].Quantity, 1e-9)
	assert.Equal(t, int64(202410050900), clock.Timestamp(sales[1].SoldAt))

	event := models.NewSaleEvent(sales[0])
	assert.Equal(t, int64(202410041424), event.Timestamp)
	assert.NoError(t, event.Validate())
}

func TestOpen_MissingDatabase(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.db"), logger)
	assert.Error(t, err)
}
