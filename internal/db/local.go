package db

import (
	"context"
	"sync"
)

// Snapshotter is implemented by the in-memory storages so LocalTxManager
// can restore their state when a transaction fails.
type Snapshotter interface {
	Snapshot() any
	Restore(snapshot any)
}

// LocalTxManager is the in-memory counterpart of GormTxManager. It
// serializes transactions with a single lock and rolls back by restoring
// a snapshot of every registered store.
type LocalTxManager struct {
	mu     sync.Mutex
	stores []Snapshotter
}

func NewLocalTxManager(stores ...Snapshotter) *LocalTxManager {
	return &LocalTxManager{stores: stores}
}

func (m *LocalTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshots := make([]any, len(m.stores))
	for i, s := range m.stores {
		snapshots[i] = s.Snapshot()
	}

	if err := fn(ctx); err != nil {
		for i, s := range m.stores {
			s.Restore(snapshots[i])
		}
		return err
	}
	return nil
}
