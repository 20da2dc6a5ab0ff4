package changes

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockle/internal/models"
)

func product(barcode string, price float64) models.Product {
	return models.Product{
		Barcode:   barcode,
		Name:      "Item " + barcode,
		Category:  "General",
		Price:     price,
		VAT:       20,
		UpdatedAt: time.Date(2024, 10, 4, 14, 24, 0, 0, time.UTC),
	}
}

func products(n int) []models.Product {
	out := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, product(fmt.Sprintf("%013d", i), 1.5))
	}
	return out
}

func collect(recorder *RecorderMock) []models.ChangeEvent {
	calls := recorder.AddChangeCalls()
	events := make([]models.ChangeEvent, 0, len(calls))
	for _, c := range calls {
		events = append(events, c.Event)
	}
	return events
}

func TestTable_ResizeBeforeInsert(t *testing.T) {
	tests := []struct {
		name         string
		inserts      int
		wantCapacity int
	}{
		{name: "eight items fit into capacity ten", inserts: 8, wantCapacity: 10},
		{name: "ninth item triggers one resize", inserts: 9, wantCapacity: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(10, nil)
			table.Update(products(tt.inserts))

			assert.Equal(t, tt.inserts, table.Len())
			assert.Equal(t, tt.wantCapacity, table.Capacity())
		})
	}
}

func TestTable_Update_EmitsAddEditDelete(t *testing.T) {
	recorder := &RecorderMock{AddChangeFunc: func(models.ChangeEvent) {}}
	table := NewTable(10, recorder)

	first := []models.Product{product("A", 1), product("B", 2), product("C", 3)}
	events := table.Update(first)
	require.Len(t, events, 3)
	for _, e := range events {
		assert.Equal(t, models.ChangeAdd, e.Type)
		assert.Equal(t, int64(202410041424), e.Timestamp)
	}

	// Тот же снимок не дает событий
	assert.Empty(t, table.Update(first))

	// B изменен, C удален, D добавлен
	second := []models.Product{product("A", 1), product("B", 5), product("D", 4)}
	events = table.Update(second)
	require.Len(t, events, 3)

	byBarcode := map[string]models.ChangeEvent{}
	for _, e := range events {
		byBarcode[e.Barcode] = e
	}
	assert.Equal(t, models.ChangeEdit, byBarcode["B"].Type)
	assert.Equal(t, 5.0, models.FloatValue(byBarcode["B"].Price))
	assert.Equal(t, models.ChangeAdd, byBarcode["D"].Type)
	assert.Equal(t, models.ChangeDelete, byBarcode["C"].Type)
	assert.Equal(t, int64(0), byBarcode["C"].Timestamp)

	// Все события переданы в Recorder
	assert.Len(t, collect(recorder), 6)

	got, ok := table.Get("B")
	require.True(t, ok)
	assert.Equal(t, 5.0, got.Price)
	_, ok = table.Get("C")
	assert.False(t, ok)
}

func TestTable_ShrinksAfterRemoval(t *testing.T) {
	table := NewTable(10, nil)
	table.Update(products(9))
	require.Equal(t, 20, table.Capacity())

	// Оставляем 1 товар: загрузка падает ниже 0.25, емкость уменьшается
	events := table.Update(products(1))
	assert.Len(t, events, 8)
	assert.Equal(t, 1, table.Len())
	assert.Less(t, table.Capacity(), 20)
	assert.GreaterOrEqual(t, table.Capacity(), 1)

	_, ok := table.Get(fmt.Sprintf("%013d", 0))
	assert.True(t, ok)
}

func TestTable_ShrinkNeverBelowOne(t *testing.T) {
	table := NewTable(2, nil)
	table.Update(products(1))
	table.Update(nil)

	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 1, table.Capacity())

	// После опустошения таблица продолжает работать
	events := table.Update(products(3))
	assert.Len(t, events, 3)
	assert.Equal(t, 3, table.Len())
}

func TestTable_SnapshotRestore(t *testing.T) {
	table := NewTable(10, nil)
	table.Update(products(12))

	snap := table.Snapshot()
	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.Equal(t, table.Capacity(), snap.Capacity)
	assert.Len(t, snap.Products, 12)

	recorder := &RecorderMock{AddChangeFunc: func(models.ChangeEvent) {}}
	restored, err := Restore(snap, recorder)
	require.NoError(t, err)
	assert.Equal(t, table.Len(), restored.Len())
	assert.Equal(t, table.Capacity(), restored.Capacity())
	assert.Empty(t, recorder.AddChangeCalls())

	// Восстановленная таблица не видит изменений в том же снимке
	assert.Empty(t, restored.Update(products(12)))
}

func TestRestore_Errors(t *testing.T) {
	_, err := Restore(Snapshot{Version: 99, Capacity: 10}, nil)
	assert.ErrorContains(t, err, "unsupported table snapshot version")

	_, err = Restore(Snapshot{Version: SnapshotVersion, Capacity: 0}, nil)
	assert.ErrorContains(t, err, "invalid table snapshot capacity")

	_, err = Restore(Snapshot{
		Version:  SnapshotVersion,
		Capacity: 4,
		Products: []models.Product{product("A", 1), product("A", 2)},
	}, nil)
	assert.ErrorContains(t, err, "duplicate barcode")
}

func TestBucketIndex_StableAndInRange(t *testing.T) {
	for _, capacity := range []int{1, 7, 10, 20} {
		idx := bucketIndex("5000112637922", capacity)
		assert.Equal(t, idx, bucketIndex("5000112637922", capacity))
		assert.True(t, idx >= 0 && idx < capacity)
	}
}
