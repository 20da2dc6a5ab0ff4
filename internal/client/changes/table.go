// Package changes реализует хеш-таблицу последнего известного состояния товаров кассы.
// Таблица сравнивает новый снимок с сохраненным и выдает события ADD/EDIT/DELETE.
package changes

import (
	"fmt"
	"math/big"

	"github.com/iudanet/stockle/internal/crypto"
	"github.com/iudanet/stockle/internal/models"
)

const (
	// DefaultCapacity - начальное число бакетов
	DefaultCapacity = 10
	// DefaultMaxLoadFactor - при превышении перед вставкой емкость удваивается
	DefaultMaxLoadFactor = 0.75
	// DefaultMinLoadFactor - при падении ниже после удаления емкость уменьшается вдвое
	DefaultMinLoadFactor = 0.25

	// SnapshotVersion - версия формата сериализации таблицы
	SnapshotVersion = 1
)

//go:generate moq -out recorder_mock.go . Recorder

// Recorder принимает события, обнаруженные таблицей (обычно журнал изменений)
type Recorder interface {
	AddChange(event models.ChangeEvent)
}

// Table - хеш-таблица товаров с ключом по штрихкоду.
// Индекс бакета: SHA1(barcode) как big-endian число по модулю емкости.
// Не потокобезопасна: вызывающий код сериализует доступ.
type Table struct {
	recorder      Recorder
	buckets       []map[string]models.Product
	size          int
	maxLoadFactor float64
	minLoadFactor float64
}

// Option настраивает Table
type Option func(*Table)

// WithLoadFactors задает пороги роста и сжатия
func WithLoadFactors(maxLoad, minLoad float64) Option {
	return func(t *Table) {
		t.maxLoadFactor = maxLoad
		t.minLoadFactor = minLoad
	}
}

// NewTable создает пустую таблицу
func NewTable(capacity int, recorder Recorder, opts ...Option) *Table {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	t := &Table{
		recorder:      recorder,
		buckets:       newBuckets(capacity),
		maxLoadFactor: DefaultMaxLoadFactor,
		minLoadFactor: DefaultMinLoadFactor,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func newBuckets(capacity int) []map[string]models.Product {
	buckets := make([]map[string]models.Product, capacity)
	for i := range buckets {
		buckets[i] = make(map[string]models.Product)
	}
	return buckets
}

// Len возвращает число хранимых товаров
func (t *Table) Len() int {
	return t.size
}

// Capacity возвращает текущее число бакетов
func (t *Table) Capacity() int {
	return len(t.buckets)
}

// Get возвращает сохраненный снимок товара
func (t *Table) Get(barcode string) (models.Product, bool) {
	p, ok := t.buckets[bucketIndex(barcode, len(t.buckets))][barcode]
	return p, ok
}

// Update сравнивает снимок кассы с сохраненным состоянием.
// Новые штрихкоды дают ADD, измененные EDIT, отсутствующие во входе DELETE.
// Все события передаются в Recorder и возвращаются вызывающему.
func (t *Table) Update(products []models.Product) []models.ChangeEvent {
	var events []models.ChangeEvent
	seen := make(map[string]struct{}, len(products))

	for _, p := range products {
		seen[p.Barcode] = struct{}{}
		changeType, changed := t.insert(p)
		if !changed {
			continue
		}
		events = append(events, models.NewProductEvent(p, changeType))
	}

	// Ключи собираем заранее: удаление может перестроить бакеты
	var stale []string
	for _, bucket := range t.buckets {
		for barcode := range bucket {
			if _, ok := seen[barcode]; !ok {
				stale = append(stale, barcode)
			}
		}
	}
	for _, barcode := range stale {
		if t.remove(barcode) {
			events = append(events, models.NewDeleteEvent(barcode))
		}
	}

	if t.recorder != nil {
		for _, e := range events {
			t.recorder.AddChange(e)
		}
	}

	return events
}

func (t *Table) loadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// insert добавляет или обновляет товар. Проверка роста выполняется до вставки.
func (t *Table) insert(p models.Product) (models.ChangeType, bool) {
	if t.loadFactor() > t.maxLoadFactor {
		t.rehash(len(t.buckets) * 2)
	}

	bucket := t.buckets[bucketIndex(p.Barcode, len(t.buckets))]
	existing, ok := bucket[p.Barcode]
	switch {
	case !ok:
		bucket[p.Barcode] = p
		t.size++
		return models.ChangeAdd, true
	case !existing.Equal(p):
		bucket[p.Barcode] = p
		return models.ChangeEdit, true
	default:
		return "", false
	}
}

// remove удаляет товар; после удаления при низкой загрузке емкость уменьшается вдвое (не ниже 1)
func (t *Table) remove(barcode string) bool {
	bucket := t.buckets[bucketIndex(barcode, len(t.buckets))]
	if _, ok := bucket[barcode]; !ok {
		return false
	}
	delete(bucket, barcode)
	t.size--

	if t.loadFactor() < t.minLoadFactor && len(t.buckets) > 1 {
		t.rehash(max(len(t.buckets)/2, 1))
	}
	return true
}

// rehash переносит все записи в новый массив бакетов
func (t *Table) rehash(capacity int) {
	buckets := newBuckets(capacity)
	for _, bucket := range t.buckets {
		for barcode, p := range bucket {
			buckets[bucketIndex(barcode, capacity)][barcode] = p
		}
	}
	t.buckets = buckets
}

func bucketIndex(barcode string, capacity int) int {
	sum := crypto.SHA1Sum([]byte(barcode))
	h := new(big.Int).SetBytes(sum[:])
	return int(h.Mod(h, big.NewInt(int64(capacity))).Int64())
}

// Snapshot - сериализуемое состояние таблицы
type Snapshot struct {
	Products []models.Product `json:"products"`
	Version  int              `json:"version"`
	Capacity int              `json:"capacity"`
}

// Snapshot возвращает копию состояния для сохранения
func (t *Table) Snapshot() Snapshot {
	products := make([]models.Product, 0, t.size)
	for _, bucket := range t.buckets {
		for _, p := range bucket {
			products = append(products, p)
		}
	}
	return Snapshot{
		Version:  SnapshotVersion,
		Capacity: len(t.buckets),
		Products: products,
	}
}

// Restore восстанавливает таблицу из снимка без генерации событий
func Restore(s Snapshot, recorder Recorder, opts ...Option) (*Table, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported table snapshot version %d", s.Version)
	}
	if s.Capacity < 1 {
		return nil, fmt.Errorf("invalid table snapshot capacity %d", s.Capacity)
	}

	t := NewTable(s.Capacity, recorder, opts...)
	for _, p := range s.Products {
		bucket := t.buckets[bucketIndex(p.Barcode, s.Capacity)]
		if _, dup := bucket[p.Barcode]; dup {
			return nil, fmt.Errorf("duplicate barcode %q in table snapshot", p.Barcode)
		}
		bucket[p.Barcode] = p
		t.size++
	}
	return t, nil
}
