package application

import (
	"context"
	"time"

	"github.com/devsystem/carwash-erp/internal/domains/seals/domain"
	"github.com/devsystem/carwash-erp/internal/domains/seals/ports"
)

// Service exposes the seal log record store.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, log *domain.SealLog) (*domain.SealLog, error) {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}
	return s.repo.Save(ctx, log)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}

func (s *Service) List(ctx context.Context) ([]*domain.SealLog, error) {
	return s.repo.List(ctx)
}
