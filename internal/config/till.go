package config

import (
	"errors"
	"time"

	"github.com/iudanet/stockle/internal/client/changes"
	"github.com/iudanet/stockle/internal/client/queue"
)

// Till - конфигурация кассового агента синхронизации
type Till struct {
	Log    Log         `koanf:"log"`
	Server TillServer  `koanf:"server"`
	POS    POSConfig   `koanf:"pos"`
	State  StateConfig `koanf:"state"`
	MDNS   MDNSLookup  `koanf:"mdns"`
	Sync   SyncConfig  `koanf:"sync"`
	Table  TableConfig `koanf:"table"`
}

// TillServer - адрес API; пустой URL включает поиск через mDNS
type TillServer struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// POSConfig - база данных кассы (Aronium)
type POSConfig struct {
	Path string `koanf:"path"`
}

// StateConfig - локальное хранилище состояния синхронизации (bbolt)
type StateConfig struct {
	Path string `koanf:"path"`
}

// SyncConfig - интервалы циклов и размеры пакетов
type SyncConfig struct {
	Interval      time.Duration `koanf:"interval"`
	PollInterval  time.Duration `koanf:"pollinterval"`
	BatchSize     int           `koanf:"batchsize"`
	QueueCapacity int           `koanf:"queuecapacity"`
}

// TableConfig - параметры таблицы обнаружения изменений
type TableConfig struct {
	Capacity      int     `koanf:"capacity"`
	MaxLoadFactor float64 `koanf:"maxload"`
	MinLoadFactor float64 `koanf:"minload"`
}

// MDNSLookup - поиск API в локальной сети
type MDNSLookup struct {
	Service string        `koanf:"service"`
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultTill возвращает конфигурацию агента по умолчанию
func DefaultTill() Till {
	return Till{
		Log:    Log{Level: "info"},
		Server: TillServer{Timeout: 30 * time.Second},
		POS:    POSConfig{Path: "pos.db"},
		State:  StateConfig{Path: "stockle-till.db"},
		Sync: SyncConfig{
			Interval:      time.Hour,
			PollInterval:  time.Minute,
			BatchSize:     queue.DefaultBatchSize,
			QueueCapacity: queue.DefaultCapacityFactor * queue.DefaultBatchSize,
		},
		Table: TableConfig{
			Capacity:      changes.DefaultCapacity,
			MaxLoadFactor: changes.DefaultMaxLoadFactor,
			MinLoadFactor: changes.DefaultMinLoadFactor,
		},
		MDNS: MDNSLookup{Service: DefaultServiceType, Timeout: 5 * time.Second},
	}
}

// LoadTill загружает конфигурацию агента поверх умолчаний
func LoadTill(opts ...Option) (Till, error) {
	cfg := DefaultTill()
	if err := NewLoader(opts...).Load(&cfg); err != nil {
		return Till{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Till{}, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c Till) Validate() error {
	var errs []error
	if c.POS.Path == "" {
		errs = append(errs, errors.New("pos.path is required"))
	}
	if c.State.Path == "" {
		errs = append(errs, errors.New("state.path is required"))
	}
	if c.Sync.Interval <= 0 || c.Sync.PollInterval <= 0 {
		errs = append(errs, errors.New("sync.interval and sync.pollinterval must be positive"))
	}
	if c.Sync.BatchSize < 1 {
		errs = append(errs, errors.New("sync.batchsize must be positive"))
	}
	if c.Sync.QueueCapacity < c.Sync.BatchSize {
		errs = append(errs, errors.New("sync.queuecapacity must hold at least one batch"))
	}
	if c.Table.Capacity < 1 {
		errs = append(errs, errors.New("table.capacity must be positive"))
	}
	if c.Table.MinLoadFactor <= 0 || c.Table.MinLoadFactor >= c.Table.MaxLoadFactor {
		errs = append(errs, errors.New("table.minload must be positive and below table.maxload"))
	}
	if c.Server.URL == "" && c.MDNS.Service == "" {
		errs = append(errs, errors.New("either server.url or mdns.service is required"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
