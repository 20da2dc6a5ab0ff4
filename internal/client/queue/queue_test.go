package queue

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/stockle/internal/models"
)

func ev(i int) models.ChangeEvent {
	return models.ChangeEvent{Barcode: fmt.Sprintf("b%d", i), Type: models.ChangeSale, Timestamp: int64(i)}
}

func TestNew_Defaults(t *testing.T) {
	q := New(0, 0)
	assert.Equal(t, DefaultBatchSize, q.BatchSize())
	assert.Equal(t, 90, q.Cap())
	assert.True(t, q.IsEmpty())

	q = New(0, 10)
	assert.Equal(t, 30, q.Cap())
}

func TestQueue_OverflowAndBatches(t *testing.T) {
	q := New(90, 30)

	var full int
	for i := 0; i < 95; i++ {
		if err := q.Enqueue(ev(i)); err != nil {
			require.ErrorIs(t, err, ErrQueueFull)
			full++
		}
	}
	assert.Equal(t, 5, full)
	assert.Equal(t, 90, q.Len())
	assert.True(t, q.IsFull())

	batch := q.GetBatch()
	require.Len(t, batch, 30)
	assert.Equal(t, "b0", batch[0].Barcode)
	assert.Equal(t, "b29", batch[29].Barcode)

	// GetBatch не удаляет
	assert.Equal(t, 90, q.Len())

	assert.Equal(t, 30, q.DequeueBatch())
	assert.Equal(t, 60, q.Len())
	assert.Equal(t, "b30", q.GetBatch()[0].Barcode)
}

func TestQueue_WrapAround(t *testing.T) {
	q := New(5, 2)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(ev(i)))
	}
	assert.Equal(t, 2, q.DequeueBatch())

	// Хвост переходит через границу буфера
	require.NoError(t, q.Enqueue(ev(5)))
	require.NoError(t, q.Enqueue(ev(6)))
	assert.ErrorIs(t, q.Enqueue(ev(7)), ErrQueueFull)

	var got []string
	for !q.IsEmpty() {
		for _, e := range q.GetBatch() {
			got = append(got, e.Barcode)
		}
		q.DequeueBatch()
	}
	assert.Equal(t, []string{"b2", "b3", "b4", "b5", "b6"}, got)
}

func TestQueue_PartialBatch(t *testing.T) {
	q := New(10, 4)
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(ev(i)))
	}
	assert.Len(t, q.GetBatch(), 3)
	assert.Equal(t, 3, q.DequeueBatch())
	assert.Equal(t, 0, q.DequeueBatch())
	assert.Empty(t, q.GetBatch())
}

func TestQueue_SnapshotRestore(t *testing.T) {
	q := New(5, 2)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(ev(i)))
	}
	q.DequeueBatch()
	require.NoError(t, q.Enqueue(ev(5)))

	snap := q.Snapshot()
	assert.Equal(t, SnapshotVersion, snap.Version)
	require.Len(t, snap.Events, 4)
	assert.Equal(t, "b2", snap.Events[0].Barcode)

	restored, err := Restore(snap)
	require.NoError(t, err)
	assert.Equal(t, q.Len(), restored.Len())
	assert.Equal(t, q.Cap(), restored.Cap())
	assert.Equal(t, q.GetBatch(), restored.GetBatch())
}

func TestRestore_Errors(t *testing.T) {
	tests := []struct {
		name    string
		snap    Snapshot
		wantErr string
	}{
		{name: "version", snap: Snapshot{Version: 7, Capacity: 1, BatchSize: 1}, wantErr: "unsupported queue snapshot version"},
		{name: "capacity", snap: Snapshot{Version: SnapshotVersion, BatchSize: 1}, wantErr: "invalid queue snapshot capacity"},
		{name: "overflow", snap: Snapshot{Version: SnapshotVersion, Capacity: 1, BatchSize: 1, Events: []models.ChangeEvent{ev(1), ev(2)}}, wantErr: "capacity 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.snap)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
