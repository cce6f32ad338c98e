package application

import (
	"context"

	"github.com/devsystem/carwash-erp/internal/domains/fleet/domain"
	"github.com/devsystem/carwash-erp/internal/domains/fleet/ports"
)

// Service exposes the read-only fleet catalog: vehicle types and their recipes.
type Service struct {
	types   ports.VehicleTypeRepository
	recipes ports.RecipeRepository
}

func NewService(types ports.VehicleTypeRepository, recipes ports.RecipeRepository) *Service {
	return &Service{types: types, recipes: recipes}
}

// ListVehicleTypes returns the full catalog.
func (s *Service) ListVehicleTypes(ctx context.Context) ([]*domain.VehicleType, error) {
	return s.types.List(ctx)
}

// RulesFor resolves the recipe for one vehicle type.
func (s *Service) RulesFor(ctx context.Context, vehicleTypeID int64) ([]domain.ConsumptionRule, error) {
	return s.recipes.RulesFor(ctx, vehicleTypeID)
}
