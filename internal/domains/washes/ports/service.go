package ports

import (
	"context"

	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
)

// CreateInput carries a wash request before accounting.
type CreateInput struct {
	VehicleTypeID  int64
	WashingMinutes int32
}

// Service defines the washing service use cases (inbound/driving port).
type Service interface {
	// Create runs the accounting engine (recipe debit, bucket totals, water
	// estimate) and persists the annotated record, all in one unit of work.
	Create(ctx context.Context, input CreateInput) (*domain.WashingService, error)
	// Delete re-credits the ledger from the current recipe, then removes the record.
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*domain.WashingService, error)
}

// WorkflowOrchestrator exposes durable wash-creation for transports that
// prefer a workflow over the inline service call.
type WorkflowOrchestrator interface {
	CreateService(ctx context.Context, input CreateInput) (*domain.WashingService, error)
}
