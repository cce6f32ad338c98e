package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
	"github.com/devsystem/carwash-erp/internal/domains/washes/ports"
	washworkflows "github.com/devsystem/carwash-erp/internal/platform/temporal/workflows/washes"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalWashWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineWashWorkflows)(nil)
)

// TemporalWashWorkflows starts wash accounting workflows on a Temporal cluster.
type TemporalWashWorkflows struct {
	client    client.Client
	taskQueue string
}

// NewTemporalWashWorkflows wires a Temporal client into the orchestrator.
func NewTemporalWashWorkflows(c client.Client) *TemporalWashWorkflows {
	return &TemporalWashWorkflows{client: c, taskQueue: washworkflows.WashAccountingTaskQueue}
}

// CreateService starts the Temporal workflow that accounts and persists a wash.
func (o *TemporalWashWorkflows) CreateService(ctx context.Context, input ports.CreateInput) (*domain.WashingService, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal wash workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := fmt.Sprintf("wash-accounting-%d-%s", input.VehicleTypeID, traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		washworkflows.WashAccountingWorkflow,
		washworkflows.WashAccountingWorkflowInput{Command: input, TraceID: traceComponent},
	)
	if err != nil {
		// A retried request with the same trace attaches to the running
		// workflow instead of accounting the wash twice.
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) {
			existingRun := o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
			var service domain.WashingService
			if err := existingRun.Get(ctx, &service); err != nil {
				return nil, err
			}
			return &service, nil
		}
		return nil, err
	}
	var service domain.WashingService
	if err := run.Get(ctx, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// InlineWashWorkflows executes the service directly without Temporal, useful
// for tests or dev fallbacks.
type InlineWashWorkflows struct {
	service ports.Service
}

// NewInlineWashWorkflows wraps the accounting engine for synchronous execution.
func NewInlineWashWorkflows(service ports.Service) *InlineWashWorkflows {
	return &InlineWashWorkflows{service: service}
}

// CreateService delegates to the application service without durable orchestration.
func (o *InlineWashWorkflows) CreateService(ctx context.Context, input ports.CreateInput) (*domain.WashingService, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline wash workflows not configured")
	}
	return o.service.Create(ctx, input)
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	span := oteltrace.SpanFromContext(ctx)
	if span == nil {
		return ""
	}
	spanCtx := span.SpanContext()
	if !spanCtx.IsValid() || !spanCtx.TraceID().IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
