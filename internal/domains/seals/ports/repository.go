package ports

import (
	"context"
	"errors"

	"github.com/devsystem/carwash-erp/internal/domains/seals/domain"
)

var ErrNotFound = errors.New("seal log not found")

// Repository persists seal log entries.
type Repository interface {
	Save(ctx context.Context, log *domain.SealLog) (*domain.SealLog, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*domain.SealLog, error)
}
