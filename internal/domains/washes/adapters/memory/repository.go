package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
	"github.com/devsystem/carwash-erp/internal/domains/washes/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory washing service persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	services map[int64]*domain.WashingService
	nextID   int64
}

func NewRepository() *Repository {
	return &Repository{services: map[int64]*domain.WashingService{}}
}

func (r *Repository) Save(_ context.Context, service *domain.WashingService) (*domain.WashingService, error) {
	if service == nil {
		return nil, errors.New("washing service is nil")
	}
	clone := *service
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.services[clone.ID] = &clone
	saved := clone
	service.ID = clone.ID
	return &saved, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.WashingService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	service, ok := r.services[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *service
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func (r *Repository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := int64(len(r.services))
	r.services = map[int64]*domain.WashingService{}
	return count, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.WashingService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.WashingService, 0, len(r.services))
	for _, service := range r.services {
		clone := *service
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Snapshot captures the current state and returns a restore func for the
// in-memory unit of work.
func (r *Repository) Snapshot() func() {
	r.mu.RLock()
	saved := make(map[int64]*domain.WashingService, len(r.services))
	for id, service := range r.services {
		clone := *service
		saved[id] = &clone
	}
	savedNext := r.nextID
	r.mu.RUnlock()
	return func() {
		r.mu.Lock()
		r.services = saved
		r.nextID = savedNext
		r.mu.Unlock()
	}
}
