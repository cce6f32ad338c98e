package washes

import (
	"go.temporal.io/sdk/workflow"

	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
	washesports "github.com/devsystem/carwash-erp/internal/domains/washes/ports"
	"github.com/devsystem/carwash-erp/internal/platform/temporal/sequences"
)

const (
	// WashAccountingWorkflowName is the public identifier for registering the workflow.
	WashAccountingWorkflowName = "washes.workflows.Accounting"
	// WashAccountingTaskQueue is the queue consumed by the worker processing wash workflows.
	WashAccountingTaskQueue = "WASH_ACCOUNTING"
)

// WashAccountingWorkflowInput captures the payload required to account one wash.
type WashAccountingWorkflowInput struct {
	Command washesports.CreateInput
	TraceID string
}

// WashAccountingWorkflow orchestrates the activities needed to account and
// persist a washing service.
func WashAccountingWorkflow(ctx workflow.Context, input WashAccountingWorkflowInput) (*domain.WashingService, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("WashAccountingWorkflow started", withTraceID(input.TraceID, "vehicleTypeId", input.Command.VehicleTypeID)...)
	service, err := sequences.RunWashAccountingSequence(ctx, input.Command)
	if err != nil {
		logger.Error("WashAccountingWorkflow failed", withTraceID(input.TraceID, "vehicleTypeId", input.Command.VehicleTypeID, "error", err)...)
		return nil, err
	}
	logger.Info("WashAccountingWorkflow completed", withTraceID(input.TraceID, "serviceId", service.ID)...)
	return service, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
