package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devsystem/carwash-erp/internal/domains/fleet/adapters/memory"
	"github.com/devsystem/carwash-erp/internal/domains/fleet/application"
	"github.com/devsystem/carwash-erp/internal/domains/fleet/domain"
)

func newCatalog() (*application.Service, *memory.Repository) {
	repo := memory.NewRepository()
	return application.NewService(repo, repo), repo
}

func TestListVehicleTypes_ReturnsCatalogOrderedByID(t *testing.T) {
	service, repo := newCatalog()
	repo.SeedVehicleType(domain.VehicleType{ID: 2, Name: "Truck", Aliases: []string{"lorry"}})
	repo.SeedVehicleType(domain.VehicleType{ID: 1, Name: "Sedan"})

	types, err := service.ListVehicleTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Sedan", types[0].Name)
	assert.Equal(t, "Truck", types[1].Name)
	assert.Equal(t, []string{"lorry"}, types[1].Aliases)
}

func TestRulesFor_FiltersByVehicleTypeAndKeepsOrder(t *testing.T) {
	service, repo := newCatalog()
	repo.SeedRule(domain.ConsumptionRule{ID: 1, VehicleTypeID: 1, SupplyID: 10, SupplyName: "Industrial Disinfectant", QuantityMl: 250})
	repo.SeedRule(domain.ConsumptionRule{ID: 2, VehicleTypeID: 2, SupplyID: 11, SupplyName: "Engine Degreaser", QuantityMl: 400})
	repo.SeedRule(domain.ConsumptionRule{ID: 3, VehicleTypeID: 1, SupplyID: 12, SupplyName: "Chlorine Bleach", QuantityMl: 100})

	rules, err := service.RulesFor(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "Industrial Disinfectant", rules[0].SupplyName)
	assert.Equal(t, "Chlorine Bleach", rules[1].SupplyName)
}

func TestRulesFor_UnknownVehicleTypeYieldsEmptyRecipe(t *testing.T) {
	service, _ := newCatalog()

	rules, err := service.RulesFor(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, rules)
}
