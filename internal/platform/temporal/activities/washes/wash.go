package washes

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
	washesports "github.com/devsystem/carwash-erp/internal/domains/washes/ports"
)

// AccountWashActivityName runs the accounting engine and persists the wash.
const AccountWashActivityName = "washes.activities.AccountWash"

// Activities groups activities that operate on the washes bounded context.
type Activities struct {
	service washesports.Service
}

// NewActivities wires the accounting engine into the Temporal activities bundle.
func NewActivities(service washesports.Service) *Activities {
	return &Activities{service: service}
}

// AccountWash debits the recipe, stamps the totals, and persists the record.
// The accounting engine runs the whole operation in one unit of work, so a
// failed attempt leaves no ledger residue and the activity is safe to retry.
func (a *Activities) AccountWash(ctx context.Context, input washesports.CreateInput) (*domain.WashingService, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("wash accounting activity not initialized", "vehicleTypeId", input.VehicleTypeID)
		return nil, errors.New("wash accounting activity not initialized")
	}
	logger.Info("AccountWash activity started", "vehicleTypeId", input.VehicleTypeID)
	service, err := a.service.Create(ctx, input)
	if err != nil {
		logger.Error("AccountWash activity failed", "vehicleTypeId", input.VehicleTypeID, "error", err)
		return nil, err
	}
	logger.Info("AccountWash activity completed", "serviceId", service.ID)
	return service, nil
}
