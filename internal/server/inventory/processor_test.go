package inventory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockle/internal/models"
	"github.com/iudanet/stockle/internal/server/storage"
)

var updatedAt = time.Date(2024, 10, 4, 14, 24, 0, 0, time.UTC)

func product(barcode string, t models.ChangeType) models.ChangeEvent {
	return models.NewProductEvent(models.Product{Barcode: barcode, Name: barcode, Price: 1, UpdatedAt: updatedAt}, t)
}

func sale(barcode string) models.ChangeEvent {
	return models.NewSaleEvent(models.Sale{Barcode: barcode, Quantity: 1, SoldAt: updatedAt})
}

func barcodes(events []models.ChangeEvent) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Barcode)
	}
	return out
}

func TestBuildChangeSet(t *testing.T) {
	tests := []struct {
		name        string
		events      []models.ChangeEvent
		wantDeletes []string
		wantAdds    []string
		wantEdits   []string
		wantSales   []string
		wantSkipped int
	}{
		{
			name:        "split by type",
			events:      []models.ChangeEvent{models.NewDeleteEvent("d"), product("a", models.ChangeAdd), product("e", models.ChangeEdit), sale("s")},
			wantDeletes: []string{"d"},
			wantAdds:    []string{"a"},
			wantEdits:   []string{"e"},
			wantSales:   []string{"s"},
		},
		{
			name: "delete cancels earlier add and edit of the same barcode",
			events: []models.ChangeEvent{
				product("x", models.ChangeAdd),
				product("x", models.ChangeEdit),
				product("y", models.ChangeEdit),
				models.NewDeleteEvent("x"),
			},
			wantDeletes: []string{"x"},
			wantAdds:    []string{},
			wantEdits:   []string{"y"},
			wantSales:   []string{},
		},
		{
			name: "add after delete survives",
			events: []models.ChangeEvent{
				models.NewDeleteEvent("x"),
				product("x", models.ChangeAdd),
			},
			wantDeletes: []string{"x"},
			wantAdds:    []string{"x"},
			wantEdits:   []string{},
			wantSales:   []string{},
		},
		{
			name: "sales are kept even when product is deleted",
			events: []models.ChangeEvent{
				sale("x"),
				models.NewDeleteEvent("x"),
			},
			wantDeletes: []string{"x"},
			wantAdds:    []string{},
			wantEdits:   []string{},
			wantSales:   []string{"x"},
		},
		{
			name: "invalid events are skipped",
			events: []models.ChangeEvent{
				{Barcode: "", Type: models.ChangeDelete},
				{Barcode: "q", Type: "BOGUS"},
				{Barcode: "n", Type: models.ChangeAdd},
			},
			wantDeletes: []string{},
			wantAdds:    []string{},
			wantEdits:   []string{},
			wantSales:   []string{},
			wantSkipped: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, skipped := BuildChangeSet(tt.events)
			assert.Equal(t, tt.wantDeletes, barcodes(set.Deletes))
			assert.Equal(t, tt.wantAdds, barcodes(set.Adds))
			assert.Equal(t, tt.wantEdits, barcodes(set.Edits))
			assert.Equal(t, tt.wantSales, barcodes(set.Sales))
			assert.Equal(t, tt.wantSkipped, skipped)
		})
	}
}

func TestProcessor_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("applies change set", func(t *testing.T) {
		store := &storage.InventoryStorageMock{
			ApplyChangeSetFunc: func(ctx context.Context, changes storage.ChangeSet) error {
				return nil
			},
		}
		p := NewProcessor(store, logger)

		result, err := p.Process(context.Background(), []models.ChangeEvent{
			product("a", models.ChangeAdd),
			sale("a"),
			{Type: models.ChangeSale},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Added)
		assert.Equal(t, 1, result.Sales)
		assert.Equal(t, 1, result.Skipped)

		calls := store.ApplyChangeSetCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, 2, calls[0].Changes.Len())
	})

	t.Run("empty batch does not touch storage", func(t *testing.T) {
		store := &storage.InventoryStorageMock{}
		p := NewProcessor(store, logger)

		result, err := p.Process(context.Background(), nil)
		require.NoError(t, err)
		assert.Zero(t, result)
		assert.Empty(t, store.ApplyChangeSetCalls())
	})

	t.Run("storage error", func(t *testing.T) {
		store := &storage.InventoryStorageMock{
			ApplyChangeSetFunc: func(ctx context.Context, changes storage.ChangeSet) error {
				return errors.New("disk full")
			},
		}
		p := NewProcessor(store, logger)

		_, err := p.Process(context.Background(), []models.ChangeEvent{models.NewDeleteEvent("a")})
		assert.ErrorContains(t, err, "disk full")
	})
}
