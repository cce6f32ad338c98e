package ports

import (
	"context"
	"errors"

	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
)

var ErrNotFound = errors.New("washing service not found")

// Repository persists washing service records.
type Repository interface {
	Save(ctx context.Context, service *domain.WashingService) (*domain.WashingService, error)
	GetByID(ctx context.Context, id int64) (*domain.WashingService, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*domain.WashingService, error)
}
