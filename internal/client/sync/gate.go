package sync

import (
	"context"
	"sync"
)

// SyncState - кто сейчас владеет общим состоянием синхронизации
type SyncState int

const (
	StateIdle SyncState = iota
	StatePeriodicRunning
	StateSyncNowRunning
)

// String возвращает имя состояния для логов
func (s SyncState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePeriodicRunning:
		return "periodic"
	case StateSyncNowRunning:
		return "sync_now"
	default:
		return "unknown"
	}
}

// gate пропускает к общему состоянию только один цикл.
// Ожидающий "sync now" обгоняет ожидающий периодический цикл.
type gate struct {
	cond    *sync.Cond
	mu      sync.Mutex
	state   SyncState
	pending int // сколько приоритетных циклов ждут входа
}

func newGate() *gate {
	g := &gate{}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// acquire ждет, пока шлюз освободится, и занимает его состоянием state.
// Возвращает ошибку контекста, если ожидание прервано.
func (g *gate) acquire(ctx context.Context, state SyncState) error {
	stop := context.AfterFunc(ctx, func() {
		g.mu.Lock()
		g.cond.Broadcast()
		g.mu.Unlock()
	})
	defer stop()

	priority := state == StateSyncNowRunning

	g.mu.Lock()
	defer g.mu.Unlock()

	if priority {
		g.pending++
	}
	for {
		if err := ctx.Err(); err != nil {
			if priority {
				g.pending--
				g.cond.Broadcast()
			}
			return err
		}
		if g.state == StateIdle && (priority || g.pending == 0) {
			break
		}
		g.cond.Wait()
	}
	if priority {
		g.pending--
	}
	g.state = state
	return nil
}

// release освобождает шлюз и будит ожидающих
func (g *gate) release() {
	g.mu.Lock()
	g.state = StateIdle
	g.cond.Broadcast()
	g.mu.Unlock()
}

// current возвращает текущее состояние
func (g *gate) current() SyncState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}
