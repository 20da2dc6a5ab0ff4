// Package queue реализует ограниченную очередь изменений, отправляемых пакетами.
package queue

import (
	"errors"
	"fmt"

	"github.com/iudanet/stockle/internal/models"
)

const (
	// DefaultBatchSize - размер пакета по умолчанию
	DefaultBatchSize = 30
	// DefaultCapacityFactor - емкость по умолчанию в пакетах
	DefaultCapacityFactor = 3

	// SnapshotVersion - версия формата сериализации очереди
	SnapshotVersion = 1
)

// ErrQueueFull возвращается Enqueue, если очередь заполнена
var ErrQueueFull = errors.New("batch queue is full")

// Queue - кольцевой буфер фиксированной емкости.
// Пакет читается GetBatch и удаляется DequeueBatch только после подтверждения сервером.
type Queue struct {
	buf       []models.ChangeEvent
	head      int
	size      int
	batchSize int
}

// New создает очередь. Нулевые значения заменяются значениями по умолчанию.
func New(capacity, batchSize int) *Queue {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if capacity <= 0 {
		capacity = DefaultCapacityFactor * batchSize
	}
	return &Queue{
		buf:       make([]models.ChangeEvent, capacity),
		batchSize: batchSize,
	}
}

// Len возвращает число элементов в очереди
func (q *Queue) Len() int {
	return q.size
}

// Cap возвращает емкость очереди
func (q *Queue) Cap() int {
	return len(q.buf)
}

// BatchSize возвращает размер пакета
func (q *Queue) BatchSize() int {
	return q.batchSize
}

// IsEmpty сообщает, пуста ли очередь
func (q *Queue) IsEmpty() bool {
	return q.size == 0
}

// IsFull сообщает, заполнена ли очередь
func (q *Queue) IsFull() bool {
	return q.size == len(q.buf)
}

// Enqueue добавляет событие в хвост очереди
func (q *Queue) Enqueue(event models.ChangeEvent) error {
	if q.IsFull() {
		return ErrQueueFull
	}
	q.buf[(q.head+q.size)%len(q.buf)] = event
	q.size++
	return nil
}

// GetBatch возвращает до batchSize событий из головы очереди, не удаляя их
func (q *Queue) GetBatch() []models.ChangeEvent {
	n := min(q.batchSize, q.size)
	batch := make([]models.ChangeEvent, n)
	for i := 0; i < n; i++ {
		batch[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return batch
}

// DequeueBatch удаляет до batchSize событий из головы очереди и возвращает их число
func (q *Queue) DequeueBatch() int {
	n := min(q.batchSize, q.size)
	for i := 0; i < n; i++ {
		q.buf[(q.head+i)%len(q.buf)] = models.ChangeEvent{}
	}
	q.head = (q.head + n) % len(q.buf)
	q.size -= n
	return n
}

// Snapshot - сериализуемое состояние очереди (элементы от головы к хвосту)
type Snapshot struct {
	Events    []models.ChangeEvent `json:"events"`
	Version   int                  `json:"version"`
	Capacity  int                  `json:"capacity"`
	BatchSize int                  `json:"batch_size"`
}

// Snapshot возвращает копию состояния для сохранения
func (q *Queue) Snapshot() Snapshot {
	events := make([]models.ChangeEvent, q.size)
	for i := 0; i < q.size; i++ {
		events[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return Snapshot{
		Version:   SnapshotVersion,
		Capacity:  len(q.buf),
		BatchSize: q.batchSize,
		Events:    events,
	}
}

// Restore восстанавливает очередь из снимка
func Restore(s Snapshot) (*Queue, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported queue snapshot version %d", s.Version)
	}
	if s.Capacity <= 0 || s.BatchSize <= 0 {
		return nil, fmt.Errorf("invalid queue snapshot capacity %d / batch size %d", s.Capacity, s.BatchSize)
	}
	if len(s.Events) > s.Capacity {
		return nil, fmt.Errorf("queue snapshot holds %d events, capacity %d", len(s.Events), s.Capacity)
	}

	q := New(s.Capacity, s.BatchSize)
	for _, e := range s.Events {
		if err := q.Enqueue(e); err != nil {
			return nil, err
		}
	}
	return q, nil
}
