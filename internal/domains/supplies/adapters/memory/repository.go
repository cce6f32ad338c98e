package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/devsystem/carwash-erp/internal/domains/supplies/domain"
	"github.com/devsystem/carwash-erp/internal/domains/supplies/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory supply persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	supplies map[int64]*domain.Supply
	nextID   int64
}

func NewRepository() *Repository {
	return &Repository{supplies: map[int64]*domain.Supply{}}
}

func (r *Repository) Save(_ context.Context, supply *domain.Supply) (*domain.Supply, error) {
	if supply == nil {
		return nil, errors.New("supply is nil")
	}
	clone := *supply
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.supplies[clone.ID] = &clone
	saved := clone
	supply.ID = clone.ID
	return &saved, nil
}

func (r *Repository) SaveAll(ctx context.Context, supplies []*domain.Supply) error {
	for _, supply := range supplies {
		if _, err := r.Save(ctx, supply); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Supply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	supply, ok := r.supplies[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *supply
	return &clone, nil
}

func (r *Repository) FindByName(_ context.Context, name string) (*domain.Supply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, supply := range r.supplies {
		if supply.MatchesName(name) {
			clone := *supply
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) List(_ context.Context) ([]*domain.Supply, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Supply, 0, len(r.supplies))
	for _, supply := range r.supplies {
		clone := *supply
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Snapshot captures the current state and returns a restore func, letting the
// in-memory unit of work roll the store back when a request fails partway.
func (r *Repository) Snapshot() func() {
	r.mu.RLock()
	saved := make(map[int64]*domain.Supply, len(r.supplies))
	for id, supply := range r.supplies {
		clone := *supply
		saved[id] = &clone
	}
	savedNext := r.nextID
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.supplies = saved
		r.nextID = savedNext
		r.mu.Unlock()
	}
}
