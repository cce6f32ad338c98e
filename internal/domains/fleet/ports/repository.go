package ports

import (
	"context"
	"errors"

	"github.com/devsystem/carwash-erp/internal/domains/fleet/domain"
)

var ErrNotFound = errors.New("vehicle type not found")

// VehicleTypeRepository exposes the vehicle type catalog.
type VehicleTypeRepository interface {
	List(ctx context.Context) ([]*domain.VehicleType, error)
	GetByID(ctx context.Context, id int64) (*domain.VehicleType, error)
}

// RecipeRepository resolves the consumption rules configured per vehicle type.
type RecipeRepository interface {
	// RulesFor returns the ordered rules for the vehicle type; an empty slice,
	// not an error, when no recipe is configured.
	RulesFor(ctx context.Context, vehicleTypeID int64) ([]domain.ConsumptionRule, error)
}
