package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
	washesports "github.com/devsystem/carwash-erp/internal/domains/washes/ports"
	washactivities "github.com/devsystem/carwash-erp/internal/platform/temporal/activities/washes"
)

// RunWashAccountingSequence executes the ordered activities needed to account
// and persist one washing service.
func RunWashAccountingSequence(ctx workflow.Context, input washesports.CreateInput) (*domain.WashingService, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("wash accounting sequence started", "vehicleTypeId", input.VehicleTypeID)
	accountOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}

	var service domain.WashingService
	err := workflow.ExecuteActivity(
		workflow.WithActivityOptions(ctx, accountOptions),
		washactivities.AccountWashActivityName,
		input,
	).Get(ctx, &service)
	if err != nil {
		logger.Error("wash accounting sequence failed", "vehicleTypeId", input.VehicleTypeID, "error", err)
		return nil, err
	}
	logger.Info("wash accounting sequence persisted", "serviceId", service.ID)
	return &service, nil
}
