// Package memtx gives the in-memory adapters the same all-or-nothing request
// semantics the postgres transaction manager provides: stores are snapshotted
// before the wrapped function runs and restored when it fails.
package memtx

import "context"

// Snapshotter captures a store's state and returns the restore func.
type Snapshotter interface {
	Snapshot() func()
}

// UnitOfWork rolls the registered stores back when the wrapped fn errors.
// Snapshots are taken in registration order, restores applied in reverse.
type UnitOfWork struct {
	stores []Snapshotter
}

func NewUnitOfWork(stores ...Snapshotter) *UnitOfWork {
	return &UnitOfWork{stores: stores}
}

func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	restores := make([]func(), 0, len(u.stores))
	for _, store := range u.stores {
		restores = append(restores, store.Snapshot())
	}
	if err := fn(ctx); err != nil {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
		return err
	}
	return nil
}
