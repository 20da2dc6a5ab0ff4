package storage

import (
	"context"

	"github.com/iudanet/stockle/internal/client/changelog"
	"github.com/iudanet/stockle/internal/client/changes"
	"github.com/iudanet/stockle/internal/client/queue"
)

// State - сохраняемое состояние синхронизации кассы.
// Nil-поле означает, что часть не сохранялась (при Load) или не меняется (при Save).
type State struct {
	Table *changes.Snapshot
	Log   *changelog.Snapshot
	Queue *queue.Snapshot
}

//go:generate moq -out state_mock.go . StateStorage

// StateStorage defines interface for persisting the till sync state
type StateStorage interface {
	// SaveState atomically writes all non-nil parts of state
	SaveState(ctx context.Context, state State) error

	// LoadState reads the saved state
	// Returns ErrStateNotFound if nothing has been saved yet
	LoadState(ctx context.Context) (State, error)
}
