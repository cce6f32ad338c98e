package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/devsystem/carwash-erp/internal/domains/fleet/domain"
	"github.com/devsystem/carwash-erp/internal/domains/fleet/ports"
)

var (
	_ ports.VehicleTypeRepository = (*Repository)(nil)
	_ ports.RecipeRepository      = (*Repository)(nil)
)

// Repository is an in-memory fleet catalog, seeded at construction.
// The catalog is read-only at runtime, so no copy-on-read is needed beyond cloning.
type Repository struct {
	mu    sync.RWMutex
	types map[int64]*domain.VehicleType
	rules []domain.ConsumptionRule
}

func NewRepository() *Repository {
	return &Repository{types: map[int64]*domain.VehicleType{}}
}

// SeedVehicleType registers a vehicle type in the catalog.
func (r *Repository) SeedVehicleType(vt domain.VehicleType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[vt.ID] = &vt
}

// SeedRule appends a consumption rule; rules keep insertion order per vehicle type.
func (r *Repository) SeedRule(rule domain.ConsumptionRule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule)
}

func (r *Repository) List(_ context.Context) ([]*domain.VehicleType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.VehicleType, 0, len(r.types))
	for _, vt := range r.types {
		clone := *vt
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.VehicleType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vt, ok := r.types[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *vt
	return &clone, nil
}

func (r *Repository) RulesFor(_ context.Context, vehicleTypeID int64) ([]domain.ConsumptionRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rules := make([]domain.ConsumptionRule, 0)
	for _, rule := range r.rules {
		if rule.VehicleTypeID == vehicleTypeID {
			rules = append(rules, rule)
		}
	}
	return rules, nil
}
