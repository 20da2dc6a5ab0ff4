// Package changelog хранит упорядоченный журнал изменений, ожидающих отправки.
package changelog

import (
	"fmt"
	"time"

	"github.com/iudanet/stockle/internal/models"
)

// SnapshotVersion - версия формата сериализации журнала
const SnapshotVersion = 1

// Log - журнал изменений в порядке добавления.
// Sort упорядочивает его стабильной сортировкой слиянием по логической метке.
// Не потокобезопасен: доступ сериализует координатор синхронизации.
type Log struct {
	salesLastSynced time.Time
	events          []models.ChangeEvent
}

// New создает пустой журнал
func New() *Log {
	return &Log{}
}

// AddChange добавляет одно изменение в конец журнала
func (l *Log) AddChange(event models.ChangeEvent) {
	l.events = append(l.events, event)
}

// AddSales добавляет продажи в конец журнала
func (l *Log) AddSales(events []models.ChangeEvent) {
	l.events = append(l.events, events...)
}

// Len возвращает число изменений в журнале
func (l *Log) Len() int {
	return len(l.events)
}

// Sort упорядочивает журнал по логической метке. Равные метки сохраняют исходный порядок.
func (l *Log) Sort() {
	l.events = mergeSort(l.events)
}

// ReturnBatch возвращает копию первых n изменений без удаления
func (l *Log) ReturnBatch(n int) []models.ChangeEvent {
	n = min(max(n, 0), len(l.events))
	batch := make([]models.ChangeEvent, n)
	copy(batch, l.events[:n])
	return batch
}

// Remove удаляет первые n изменений (подтвержденный префикс)
func (l *Log) Remove(n int) {
	n = min(max(n, 0), len(l.events))
	l.events = append([]models.ChangeEvent(nil), l.events[n:]...)
}

// SalesLastSynced возвращает время последней учтенной продажи (нулевое, если продаж еще не было)
func (l *Log) SalesLastSynced() time.Time {
	return l.salesLastSynced
}

// UpdateSalesLastSynced сдвигает отметку последней учтенной продажи
func (l *Log) UpdateSalesLastSynced(t time.Time) {
	if t.After(l.salesLastSynced) {
		l.salesLastSynced = t
	}
}

func mergeSort(events []models.ChangeEvent) []models.ChangeEvent {
	if len(events) <= 1 {
		return events
	}

	mid := len(events) / 2
	left := mergeSort(events[:mid])
	right := mergeSort(events[mid:])

	merged := make([]models.ChangeEvent, 0, len(events))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// <= сохраняет стабильность: при равенстве берется левый элемент
		if left[i].Timestamp <= right[j].Timestamp {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}
	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)
	return merged
}

// Snapshot - сериализуемое состояние журнала
type Snapshot struct {
	SalesLastSynced time.Time            `json:"sales_last_synced"`
	Events          []models.ChangeEvent `json:"events"`
	Version         int                  `json:"version"`
}

// Snapshot возвращает копию состояния для сохранения
func (l *Log) Snapshot() Snapshot {
	events := make([]models.ChangeEvent, len(l.events))
	copy(events, l.events)
	return Snapshot{
		Version:         SnapshotVersion,
		Events:          events,
		SalesLastSynced: l.salesLastSynced,
	}
}

// Restore восстанавливает журнал из снимка
func Restore(s Snapshot) (*Log, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported change log snapshot version %d", s.Version)
	}
	l := &Log{salesLastSynced: s.SalesLastSynced}
	l.events = append(l.events, s.Events...)
	return l, nil
}
