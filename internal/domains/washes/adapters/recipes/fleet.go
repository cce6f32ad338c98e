// Package recipes adapts the fleet catalog to the accounting engine's
// recipe-source port.
package recipes

import (
	"context"
	"errors"

	fleetports "github.com/devsystem/carwash-erp/internal/domains/fleet/ports"
	"github.com/devsystem/carwash-erp/internal/domains/washes/ports"
)

var _ ports.RecipeSource = (*FleetRecipeSource)(nil)

// FleetRecipeSource resolves recipe lines from the fleet recipe repository.
type FleetRecipeSource struct {
	recipes fleetports.RecipeRepository
}

func NewFleetRecipeSource(recipes fleetports.RecipeRepository) *FleetRecipeSource {
	return &FleetRecipeSource{recipes: recipes}
}

func (s *FleetRecipeSource) RulesFor(ctx context.Context, vehicleTypeID int64) ([]ports.RecipeLine, error) {
	if s == nil || s.recipes == nil {
		return nil, errors.New("fleet recipe source not configured")
	}
	rules, err := s.recipes.RulesFor(ctx, vehicleTypeID)
	if err != nil {
		return nil, err
	}
	lines := make([]ports.RecipeLine, 0, len(rules))
	for _, rule := range rules {
		lines = append(lines, ports.RecipeLine{
			SupplyID:   rule.SupplyID,
			SupplyName: rule.SupplyName,
			QuantityMl: rule.QuantityMl,
		})
	}
	return lines, nil
}
