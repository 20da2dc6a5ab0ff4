// Package sync координирует выгрузку изменений кассы в API инвентаря.
// Два цикла (периодический и "sync now") делят хеш-таблицу, журнал и очередь
// и никогда не выполняют отправку одновременно.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/stockle/internal/client/changelog"
	"github.com/iudanet/stockle/internal/client/changes"
	"github.com/iudanet/stockle/internal/client/queue"
	"github.com/iudanet/stockle/internal/client/storage"
	"github.com/iudanet/stockle/internal/clock"
	"github.com/iudanet/stockle/internal/models"
)

const (
	DefaultInterval     = time.Hour
	DefaultPollInterval = time.Minute
)

// Config задает интервалы циклов и размеры структур
type Config struct {
	Interval      time.Duration // период полной синхронизации
	PollInterval  time.Duration // период опроса флага "sync now"
	TableCapacity int
	MaxLoadFactor float64
	MinLoadFactor float64
	QueueCapacity int
	BatchSize     int
}

// Coordinator владеет состоянием синхронизации кассы
type Coordinator struct {
	api      APIClient
	source   ProductSource
	state    storage.StateStorage
	metadata storage.MetadataStorage
	clock    clock.Clock
	logger   *slog.Logger
	gate     *gate
	table    *changes.Table
	log      *changelog.Log
	queue    *queue.Queue
	syncedC  chan struct{} // сигнал периодическому циклу после "sync now"
	cfg      Config
}

// Option настраивает Coordinator
type Option func(*Coordinator)

// WithClock задает источник времени последней синхронизации
func WithClock(c clock.Clock) Option {
	return func(co *Coordinator) {
		co.clock = c
	}
}

// NewCoordinator создает координатор и восстанавливает сохраненное состояние.
// Отсутствие сохраненного состояния - не ошибка: начинаем с пустых структур.
func NewCoordinator(
	ctx context.Context,
	cfg Config,
	apiClient APIClient,
	source ProductSource,
	stateStorage storage.StateStorage,
	metadata storage.MetadataStorage,
	logger *slog.Logger,
	opts ...Option,
) (*Coordinator, error) {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	c := &Coordinator{
		api:      apiClient,
		source:   source,
		state:    stateStorage,
		metadata: metadata,
		clock:    clock.System{},
		logger:   logger,
		gate:     newGate(),
		syncedC:  make(chan struct{}, 1),
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.restore(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Coordinator) tableOptions() []changes.Option {
	if c.cfg.MaxLoadFactor <= 0 || c.cfg.MinLoadFactor <= 0 {
		return nil
	}
	return []changes.Option{changes.WithLoadFactors(c.cfg.MaxLoadFactor, c.cfg.MinLoadFactor)}
}

// restore поднимает таблицу, журнал и очередь из хранилища
func (c *Coordinator) restore(ctx context.Context) error {
	st, err := c.state.LoadState(ctx)
	if err != nil && !errors.Is(err, storage.ErrStateNotFound) {
		return fmt.Errorf("failed to load sync state: %w", err)
	}

	c.log = changelog.New()
	if st.Log != nil {
		if c.log, err = changelog.Restore(*st.Log); err != nil {
			return fmt.Errorf("failed to restore change log: %w", err)
		}
	}

	// Таблица пишет обнаруженные изменения прямо в журнал
	c.table = changes.NewTable(c.cfg.TableCapacity, c.log, c.tableOptions()...)
	if st.Table != nil {
		if c.table, err = changes.Restore(*st.Table, c.log, c.tableOptions()...); err != nil {
			return fmt.Errorf("failed to restore product table: %w", err)
		}
	}

	// Сохраненная очередь сохраняет свои размеры: недоставленный пакет уходит повторно как есть
	c.queue = queue.New(c.cfg.QueueCapacity, c.cfg.BatchSize)
	if st.Queue != nil {
		if c.queue, err = queue.Restore(*st.Queue); err != nil {
			return fmt.Errorf("failed to restore batch queue: %w", err)
		}
	}

	c.logger.Info("Sync state restored",
		"products", c.table.Len(),
		"pending_changes", c.log.Len(),
		"queued_events", c.queue.Len(),
		"sales_last_synced", c.log.SalesLastSynced())
	return nil
}

// State возвращает, какой цикл сейчас владеет состоянием
func (c *Coordinator) State() SyncState {
	return c.gate.current()
}

// Run запускает оба цикла и блокируется до отмены ctx
func (c *Coordinator) Run(ctx context.Context) error {
	c.logger.Info("Starting sync coordinator",
		"interval", c.cfg.Interval,
		"poll_interval", c.cfg.PollInterval)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.periodicLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		c.syncNowLoop(ctx)
	}()
	wg.Wait()

	c.logger.Info("Sync coordinator stopped")
	return nil
}

func (c *Coordinator) periodicLoop(ctx context.Context) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.syncedC:
			// Только что прошел "sync now": следующий периодический цикл через полный интервал
			timer.Reset(c.cfg.Interval)
			continue
		case <-timer.C:
		}

		if err := c.RunPeriodic(ctx); err != nil && ctx.Err() == nil {
			c.logger.Error("Periodic sync failed", "error", err)
		}
		timer.Reset(c.cfg.Interval)
	}
}

func (c *Coordinator) syncNowLoop(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		ran, err := c.RunSyncNow(ctx)
		if err != nil && ctx.Err() == nil {
			c.logger.Error("Sync now failed", "error", err)
		}
		if ran {
			select {
			case c.syncedC <- struct{}{}:
			default:
			}
		}
	}
}

// RunPeriodic выполняет один периодический цикл: обновляет таблицу из базы кассы
// и, если API доступен, выгружает накопленные изменения
func (c *Coordinator) RunPeriodic(ctx context.Context) error {
	if err := c.gate.acquire(ctx, StatePeriodicRunning); err != nil {
		return err
	}
	defer c.gate.release()

	if err := c.refreshProducts(ctx); err != nil {
		return err
	}

	if !c.api.CheckAvailability(ctx) {
		c.logger.Info("API unavailable, changes kept for the next cycle",
			"pending_changes", c.log.Len(),
			"queued_events", c.queue.Len())
		return nil
	}

	return c.syncAPI(ctx)
}

// RunSyncNow проверяет флаг "sync now" и при его наличии выполняет полный цикл.
// Возвращает true, если синхронизация была запрошена.
func (c *Coordinator) RunSyncNow(ctx context.Context) (bool, error) {
	// Флаг одноразовый: после положительного ответа цикл обязан выполниться
	if !c.api.CheckSyncRequested(ctx) {
		return false, nil
	}
	c.logger.Info("Sync requested by operator")

	if err := c.gate.acquire(ctx, StateSyncNowRunning); err != nil {
		return true, err
	}
	defer c.gate.release()

	if err := c.refreshProducts(ctx); err != nil {
		return true, err
	}
	return true, c.syncAPI(ctx)
}

// refreshProducts сравнивает снимок товаров кассы с таблицей.
// Найденные ADD/EDIT/DELETE попадают в журнал через таблицу.
func (c *Coordinator) refreshProducts(ctx context.Context) error {
	products, err := c.source.Products(ctx)
	if err != nil {
		return fmt.Errorf("failed to read POS products: %w", err)
	}

	detected := c.table.Update(products)
	if len(detected) > 0 {
		c.logger.Info("Detected product changes", "count", len(detected))
	}

	return c.persist(ctx, true, true, false)
}

// syncAPI подтягивает новые продажи, сортирует журнал и отправляет пакеты,
// пока журнал и очередь не опустеют или API не перестанет подтверждать
func (c *Coordinator) syncAPI(ctx context.Context) error {
	sales, err := c.source.SalesSince(ctx, c.log.SalesLastSynced())
	if err != nil {
		return fmt.Errorf("failed to read POS sales: %w", err)
	}

	events := make([]models.ChangeEvent, 0, len(sales))
	for _, s := range sales {
		events = append(events, models.NewSaleEvent(s))
		c.log.UpdateSalesLastSynced(s.SoldAt)
	}
	c.log.AddSales(events)
	c.log.Sort()

	if err := c.persist(ctx, false, true, false); err != nil {
		return err
	}

	sent := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if c.queue.IsEmpty() {
			batch := c.log.ReturnBatch(c.queue.Cap())
			if len(batch) == 0 {
				break
			}
			for _, e := range batch {
				if err := c.queue.Enqueue(e); err != nil {
					return fmt.Errorf("failed to fill batch queue: %w", err)
				}
			}
			c.log.Remove(len(batch))
			if err := c.persist(ctx, false, true, true); err != nil {
				return err
			}
			continue
		}

		batch := c.queue.GetBatch()
		result, err := c.api.SendBatch(ctx, batch)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Warn("Batch not acknowledged, will resend next cycle",
				"size", len(batch),
				"error", err)
			return nil
		}

		n := c.queue.DequeueBatch()
		sent += n
		c.logger.Debug("Batch acknowledged",
			"size", n,
			"added", result.Added,
			"edited", result.Edited,
			"deleted", result.Deleted,
			"sales", result.Sales,
			"skipped", result.Skipped)

		if err := c.persist(ctx, false, false, true); err != nil {
			return err
		}
	}

	c.logger.Info("Sync completed", "sent_events", sent)

	if err := c.metadata.SaveLastSyncTime(ctx, c.clock.Now()); err != nil {
		// Время синхронизации справочное, не прерываем цикл
		c.logger.Warn("Failed to save last sync time", "error", err)
	}
	return nil
}

// persist атомарно сохраняет выбранные части состояния
func (c *Coordinator) persist(ctx context.Context, table, log, q bool) error {
	var st storage.State
	if table {
		snap := c.table.Snapshot()
		st.Table = &snap
	}
	if log {
		snap := c.log.Snapshot()
		st.Log = &snap
	}
	if q {
		snap := c.queue.Snapshot()
		st.Queue = &snap
	}

	if err := c.state.SaveState(ctx, st); err != nil {
		return fmt.Errorf("failed to persist sync state: %w", err)
	}
	return nil
}
