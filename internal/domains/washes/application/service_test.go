package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fleetmemory "github.com/devsystem/carwash-erp/internal/domains/fleet/adapters/memory"
	fleetdomain "github.com/devsystem/carwash-erp/internal/domains/fleet/domain"
	suppliesmemory "github.com/devsystem/carwash-erp/internal/domains/supplies/adapters/memory"
	suppliesapp "github.com/devsystem/carwash-erp/internal/domains/supplies/application"
	suppliesports "github.com/devsystem/carwash-erp/internal/domains/supplies/ports"
	washmemory "github.com/devsystem/carwash-erp/internal/domains/washes/adapters/memory"
	"github.com/devsystem/carwash-erp/internal/domains/washes/adapters/recipes"
	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
	"github.com/devsystem/carwash-erp/internal/domains/washes/ports"
	"github.com/devsystem/carwash-erp/internal/platform/memtx"
)

// fixture wires the accounting engine against in-memory collaborators,
// mirroring the production wiring in DSN-less mode.
type fixture struct {
	ledger   *suppliesapp.Service
	supplies *suppliesmemory.Repository
	fleet    *fleetmemory.Repository
	washes   *washmemory.Repository
	engine   *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	supplies := suppliesmemory.NewRepository()
	fleet := fleetmemory.NewRepository()
	washes := washmemory.NewRepository()
	ledger := suppliesapp.NewService(supplies)
	engine := NewService(
		washes,
		ledger,
		recipes.NewFleetRecipeSource(fleet),
		memtx.NewUnitOfWork(supplies, washes),
	)
	return &fixture{ledger: ledger, supplies: supplies, fleet: fleet, washes: washes, engine: engine}
}

func (f *fixture) seedSupply(t *testing.T, name string, liters float64) int64 {
	t.Helper()
	supply, err := f.ledger.Restock(context.Background(), suppliesports.RestockInput{Name: name, Quantity: liters})
	require.NoError(t, err)
	return supply.ID
}

func (f *fixture) seedRule(vehicleTypeID, supplyID int64, name string, quantityMl float64) {
	f.fleet.SeedRule(fleetdomain.ConsumptionRule{
		VehicleTypeID: vehicleTypeID,
		SupplyID:      supplyID,
		SupplyName:    name,
		QuantityMl:    quantityMl,
	})
}

func (f *fixture) quantityOf(t *testing.T, supplyID int64) float64 {
	t.Helper()
	supply, err := f.supplies.GetByID(context.Background(), supplyID)
	require.NoError(t, err)
	return supply.CurrentQuantity
}

func TestCreate_DebitsRecipeAndStampsTotals(t *testing.T) {
	f := newFixture(t)
	bleachID := f.seedSupply(t, "Industrial Bleach", 10)
	disinfectantID := f.seedSupply(t, "Lab Disinfectant", 2)
	degreaserID := f.seedSupply(t, "Citrus Degreaser", 1)
	waxID := f.seedSupply(t, "Foam Wax", 5)
	f.seedRule(1, bleachID, "Industrial Bleach", 500)
	f.seedRule(1, disinfectantID, "Lab Disinfectant", 200)
	f.seedRule(1, degreaserID, "Citrus Degreaser", 100)
	f.seedRule(1, waxID, "Foam Wax", 250)

	saved, err := f.engine.Create(context.Background(), ports.CreateInput{VehicleTypeID: 1, WashingMinutes: 12})
	require.NoError(t, err)

	assert.Equal(t, 500.0, saved.BleachUsedMl)
	assert.Equal(t, 200.0, saved.DisinfectantUsedMl)
	assert.Equal(t, 100.0, saved.DegreaserUsedMl)
	assert.Equal(t, 120.0, saved.WaterUsedL)

	assert.InDelta(t, 9.5, f.quantityOf(t, bleachID), 1e-9)
	assert.InDelta(t, 1.8, f.quantityOf(t, disinfectantID), 1e-9)
	assert.InDelta(t, 0.9, f.quantityOf(t, degreaserID), 1e-9)
	// Unmatched names are debited but contribute to no bucket.
	assert.InDelta(t, 4.75, f.quantityOf(t, waxID), 1e-9)
}

func TestCreate_DebitClampsAtZero(t *testing.T) {
	f := newFixture(t)
	bleachID := f.seedSupply(t, "Bleach", 0.3)
	f.seedRule(1, bleachID, "Bleach", 500)

	saved, err := f.engine.Create(context.Background(), ports.CreateInput{VehicleTypeID: 1, WashingMinutes: 5})
	require.NoError(t, err)

	assert.Equal(t, 0.0, f.quantityOf(t, bleachID))
	assert.Equal(t, 500.0, saved.BleachUsedMl, "totals report demanded amounts even when stock ran out")
}

func TestCreate_MissingVehicleTypeLeavesLedgerUntouched(t *testing.T) {
	f := newFixture(t)
	bleachID := f.seedSupply(t, "Bleach", 4)
	f.seedRule(1, bleachID, "Bleach", 500)

	_, err := f.engine.Create(context.Background(), ports.CreateInput{WashingMinutes: 10})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrMissingVehicleType)

	assert.Equal(t, 4.0, f.quantityOf(t, bleachID))
	services, err := f.washes.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestCreate_EmptyRecipeStillComputesWater(t *testing.T) {
	f := newFixture(t)

	saved, err := f.engine.Create(context.Background(), ports.CreateInput{VehicleTypeID: 7, WashingMinutes: 12})
	require.NoError(t, err)

	assert.Equal(t, 0.0, saved.BleachUsedMl)
	assert.Equal(t, 0.0, saved.DisinfectantUsedMl)
	assert.Equal(t, 0.0, saved.DegreaserUsedMl)
	assert.Equal(t, 120.0, saved.WaterUsedL)
}

func TestCreate_ZeroMinutesYieldsZeroWater(t *testing.T) {
	f := newFixture(t)

	saved, err := f.engine.Create(context.Background(), ports.CreateInput{VehicleTypeID: 7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, saved.WaterUsedL)
}

// failingWashRepo rejects writes to simulate a persistence outage.
type failingWashRepo struct {
	ports.Repository
}

func (f failingWashRepo) Save(context.Context, *domain.WashingService) (*domain.WashingService, error) {
	return nil, errors.New("store unavailable")
}

func TestCreate_RollsBackDebitsOnPersistFailure(t *testing.T) {
	supplies := suppliesmemory.NewRepository()
	fleet := fleetmemory.NewRepository()
	washes := washmemory.NewRepository()
	ledger := suppliesapp.NewService(supplies)
	engine := NewService(
		failingWashRepo{Repository: washes},
		ledger,
		recipes.NewFleetRecipeSource(fleet),
		memtx.NewUnitOfWork(supplies, washes),
	)

	bleach, err := ledger.Restock(context.Background(), suppliesports.RestockInput{Name: "Bleach", Quantity: 6})
	require.NoError(t, err)
	fleet.SeedRule(fleetdomain.ConsumptionRule{VehicleTypeID: 1, SupplyID: bleach.ID, SupplyName: "Bleach", QuantityMl: 500})

	_, err = engine.Create(context.Background(), ports.CreateInput{VehicleTypeID: 1, WashingMinutes: 5})
	require.Error(t, err)

	restored, err := supplies.GetByID(context.Background(), bleach.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.0, restored.CurrentQuantity, "failed request must leave no ledger residue")
}

func TestDelete_RoundTripRestoresStockExactly(t *testing.T) {
	f := newFixture(t)
	bleachID := f.seedSupply(t, "Industrial Bleach", 10)
	disinfectantID := f.seedSupply(t, "Disinfectant Plus", 3)
	f.seedRule(2, bleachID, "Industrial Bleach", 500)
	f.seedRule(2, disinfectantID, "Disinfectant Plus", 750)

	saved, err := f.engine.Create(context.Background(), ports.CreateInput{VehicleTypeID: 2, WashingMinutes: 8})
	require.NoError(t, err)
	require.InDelta(t, 9.5, f.quantityOf(t, bleachID), 1e-9)

	require.NoError(t, f.engine.Delete(context.Background(), saved.ID))

	assert.InDelta(t, 10.0, f.quantityOf(t, bleachID), 1e-9)
	assert.InDelta(t, 3.0, f.quantityOf(t, disinfectantID), 1e-9)

	_, err = f.washes.GetByID(context.Background(), saved.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete_UnknownServiceID(t *testing.T) {
	f := newFixture(t)
	err := f.engine.Delete(context.Background(), 99)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDelete_NoVehicleTypeSkipsReversal(t *testing.T) {
	f := newFixture(t)
	bleachID := f.seedSupply(t, "Bleach", 2)
	f.seedRule(1, bleachID, "Bleach", 500)

	// Legacy rows may lack a vehicle type reference; removal must not credit anything.
	orphan, err := f.washes.Save(context.Background(), &domain.WashingService{WashingMinutes: 4})
	require.NoError(t, err)

	require.NoError(t, f.engine.Delete(context.Background(), orphan.ID))
	assert.Equal(t, 2.0, f.quantityOf(t, bleachID))
}

func TestDeleteAll_DropsRecordsWithoutReversal(t *testing.T) {
	f := newFixture(t)
	bleachID := f.seedSupply(t, "Bleach", 5)
	f.seedRule(1, bleachID, "Bleach", 1000)

	_, err := f.engine.Create(context.Background(), ports.CreateInput{VehicleTypeID: 1, WashingMinutes: 3})
	require.NoError(t, err)

	count, err := f.engine.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 4.0, f.quantityOf(t, bleachID), "bulk cleanup does not restore stock")
}
