package ports

import (
	"context"
	"errors"

	"github.com/devsystem/carwash-erp/internal/domains/supplies/domain"
)

var ErrNotFound = errors.New("supply not found")

// Repository persists supplies for the inventory ledger.
type Repository interface {
	Save(ctx context.Context, supply *domain.Supply) (*domain.Supply, error)
	// SaveAll persists the batch atomically; either every supply is written or none.
	SaveAll(ctx context.Context, supplies []*domain.Supply) error
	GetByID(ctx context.Context, id int64) (*domain.Supply, error)
	// FindByName matches the supply name case-insensitively.
	FindByName(ctx context.Context, name string) (*domain.Supply, error)
	List(ctx context.Context) ([]*domain.Supply, error)
}
