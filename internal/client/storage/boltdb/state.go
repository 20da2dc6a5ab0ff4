package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stockle/internal/client/changelog"
	"github.com/iudanet/stockle/internal/client/changes"
	"github.com/iudanet/stockle/internal/client/queue"
	"github.com/iudanet/stockle/internal/client/storage"
)

var (
	keyTable = []byte("table")
	keyLog   = []byte("log")
	keyQueue = []byte("queue")
)

// SaveState atomically writes all non-nil parts of state
func (s *Storage) SaveState(ctx context.Context, state storage.State) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketState)
		if bucket == nil {
			return fmt.Errorf("state bucket not found")
		}

		parts := []struct {
			value any
			key   []byte
			set   bool
		}{
			{key: keyTable, value: state.Table, set: state.Table != nil},
			{key: keyLog, value: state.Log, set: state.Log != nil},
			{key: keyQueue, value: state.Queue, set: state.Queue != nil},
		}

		for _, p := range parts {
			if !p.set {
				continue
			}
			data, err := json.Marshal(p.value)
			if err != nil {
				return fmt.Errorf("failed to marshal %s snapshot: %w", p.key, err)
			}
			if err := bucket.Put(p.key, data); err != nil {
				return fmt.Errorf("failed to save %s snapshot: %w", p.key, err)
			}
		}
		return nil
	})
}

// LoadState reads the saved state
// Returns storage.ErrStateNotFound if nothing has been saved yet
func (s *Storage) LoadState(ctx context.Context) (storage.State, error) {
	var state storage.State

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketState)
		if bucket == nil {
			return fmt.Errorf("state bucket not found")
		}

		if data := bucket.Get(keyTable); data != nil {
			var snap changes.Snapshot
			if err := decodeSnapshot(data, &snap, keyTable); err != nil {
				return err
			}
			if err := checkVersion(snap.Version, changes.SnapshotVersion, keyTable); err != nil {
				return err
			}
			state.Table = &snap
		}

		if data := bucket.Get(keyLog); data != nil {
			var snap changelog.Snapshot
			if err := decodeSnapshot(data, &snap, keyLog); err != nil {
				return err
			}
			if err := checkVersion(snap.Version, changelog.SnapshotVersion, keyLog); err != nil {
				return err
			}
			state.Log = &snap
		}

		if data := bucket.Get(keyQueue); data != nil {
			var snap queue.Snapshot
			if err := decodeSnapshot(data, &snap, keyQueue); err != nil {
				return err
			}
			if err := checkVersion(snap.Version, queue.SnapshotVersion, keyQueue); err != nil {
				return err
			}
			state.Queue = &snap
		}

		return nil
	})
	if err != nil {
		return storage.State{}, fmt.Errorf("failed to load sync state: %w", err)
	}

	if state.Table == nil && state.Log == nil && state.Queue == nil {
		return storage.State{}, storage.ErrStateNotFound
	}
	return state, nil
}

// decodeSnapshot разбирает JSON снимка (данные bbolt валидны только внутри транзакции)
func decodeSnapshot(data []byte, target any, key []byte) error {
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %s: %w", storage.ErrCorruptState, key, err)
	}
	return nil
}

func checkVersion(got, want int, key []byte) error {
	if got != want {
		return fmt.Errorf("%w: %s snapshot version %d, expected %d", storage.ErrUnsupportedVersion, key, got, want)
	}
	return nil
}
