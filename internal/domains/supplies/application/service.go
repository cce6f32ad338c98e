package application

import (
	"context"
	"errors"

	"github.com/devsystem/carwash-erp/internal/domains/supplies/domain"
	"github.com/devsystem/carwash-erp/internal/domains/supplies/ports"
)

// Service is the supply ledger: it owns every quantity mutation so that
// restocks merge, debits clamp, and resets stay batch-atomic.
type Service struct {
	repo ports.Repository
}

// NewService wires the ledger with its repository.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Restock merges the incoming quantity into the supply matching the name
// (case-insensitive) or creates a new supply with a derived SKU.
// Restocking is cumulative: two restocks of the same name add up.
func (s *Service) Restock(ctx context.Context, input ports.RestockInput) (*domain.Supply, error) {
	incoming, err := domain.NewSupply(input.Name, input.SKU, input.Quantity)
	if err != nil {
		return nil, mapError(err)
	}
	existing, err := s.repo.FindByName(ctx, input.Name)
	switch {
	case err == nil:
		// The supplied SKU is ignored on merge; the stored row wins.
		existing.AddStock(input.Quantity)
		return s.repo.Save(ctx, existing)
	case errors.Is(err, ports.ErrNotFound):
		return s.repo.Save(ctx, incoming)
	default:
		return nil, err
	}
}

// ResetAll zeroes every supply quantity in one batch, preserving names and SKUs.
func (s *Service) ResetAll(ctx context.Context) (int, error) {
	supplies, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	for _, supply := range supplies {
		supply.Reset()
	}
	if err := s.repo.SaveAll(ctx, supplies); err != nil {
		return 0, err
	}
	return len(supplies), nil
}

// Debit drains liters from a supply, clamping the stored quantity at zero.
func (s *Service) Debit(ctx context.Context, supplyID int64, liters float64) (float64, error) {
	supply, err := s.repo.GetByID(ctx, supplyID)
	if err != nil {
		return 0, err
	}
	newQty := supply.Drain(liters)
	if _, err := s.repo.Save(ctx, supply); err != nil {
		return 0, err
	}
	return newQty, nil
}

// Credit adds liters back to a supply unconditionally; used by wash reversal.
func (s *Service) Credit(ctx context.Context, supplyID int64, liters float64) (float64, error) {
	supply, err := s.repo.GetByID(ctx, supplyID)
	if err != nil {
		return 0, err
	}
	newQty := supply.AddStock(liters)
	if _, err := s.repo.Save(ctx, supply); err != nil {
		return 0, err
	}
	return newQty, nil
}

// List exposes all supplies for inventory views.
func (s *Service) List(ctx context.Context) ([]*domain.Supply, error) {
	return s.repo.List(ctx)
}

var _ ports.Ledger = (*Service)(nil)
