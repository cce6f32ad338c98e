package ports

import (
	"context"

	"github.com/devsystem/carwash-erp/internal/domains/supplies/domain"
)

// RestockInput carries one incoming delivery of a supply.
// Quantity is in liters; SKU is only honored when the name is unknown.
type RestockInput struct {
	Name     string
	Quantity float64
	SKU      string
}

// Ledger defines the supply bookkeeping use cases (inbound/driving port).
type Ledger interface {
	Restock(ctx context.Context, input RestockInput) (*domain.Supply, error)
	// ResetAll zeroes every supply quantity and reports how many rows were touched.
	ResetAll(ctx context.Context) (int, error)
	Debit(ctx context.Context, supplyID int64, liters float64) (float64, error)
	Credit(ctx context.Context, supplyID int64, liters float64) (float64, error)
	List(ctx context.Context) ([]*domain.Supply, error)
}
