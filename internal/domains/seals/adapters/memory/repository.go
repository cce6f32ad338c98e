package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/devsystem/carwash-erp/internal/domains/seals/domain"
	"github.com/devsystem/carwash-erp/internal/domains/seals/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory seal log persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	logs   map[int64]*domain.SealLog
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{logs: map[int64]*domain.SealLog{}}
}

func (r *Repository) Save(_ context.Context, log *domain.SealLog) (*domain.SealLog, error) {
	if log == nil {
		return nil, errors.New("seal log is nil")
	}
	clone := *log
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.logs[clone.ID] = &clone
	saved := clone
	return &saved, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.logs[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.logs, id)
	return nil
}

func (r *Repository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := int64(len(r.logs))
	r.logs = map[int64]*domain.SealLog{}
	return count, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.SealLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.SealLog, 0, len(r.logs))
	for _, log := range r.logs {
		clone := *log
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
