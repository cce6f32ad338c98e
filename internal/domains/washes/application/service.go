package application

import (
	"context"

	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
	"github.com/devsystem/carwash-erp/internal/domains/washes/ports"
)

const millilitersPerLiter = 1000.0

// Service is the accounting engine for washing services: creating a wash
// consumes supplies according to the vehicle type's recipe and stamps the
// usage totals; deleting a wash reverses the consumption before removal.
type Service struct {
	repo    ports.Repository
	ledger  ports.StockLedger
	recipes ports.RecipeSource
	uow     ports.UnitOfWork
}

// NewService wires the accounting engine with its collaborators.
func NewService(repo ports.Repository, ledger ports.StockLedger, recipes ports.RecipeSource, uow ports.UnitOfWork) *Service {
	return &Service{repo: repo, ledger: ledger, recipes: recipes, uow: uow}
}

// Create validates the request, then — inside one unit of work — debits every
// recipe supply, accumulates bucketed totals, stamps the water estimate, and
// persists the annotated record. A failure anywhere rolls back all debits.
func (s *Service) Create(ctx context.Context, input ports.CreateInput) (*domain.WashingService, error) {
	service, err := domain.NewWashingService(input.VehicleTypeID, input.WashingMinutes)
	if err != nil {
		return nil, mapError(err)
	}
	var saved *domain.WashingService
	err = s.uow.Execute(ctx, func(ctx context.Context) error {
		lines, err := s.recipes.RulesFor(ctx, service.VehicleTypeID)
		if err != nil {
			return err
		}
		var totals domain.UsageTotals
		for _, line := range lines {
			liters := line.QuantityMl / millilitersPerLiter
			if _, err := s.ledger.Debit(ctx, line.SupplyID, liters); err != nil {
				return err
			}
			totals.Add(domain.ClassifySupplyName(line.SupplyName), line.QuantityMl)
		}
		service.StampAccounting(totals, domain.WaterForMinutes(service.WashingMinutes))
		saved, err = s.repo.Save(ctx, service)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Delete reverses the wash's consumption and removes the record, in one unit
// of work. Reversal re-reads the vehicle type's current recipe; a wash without
// a vehicle type reference is removed without reversal.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		service, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if service.VehicleTypeID > 0 {
			lines, err := s.recipes.RulesFor(ctx, service.VehicleTypeID)
			if err != nil {
				return err
			}
			for _, line := range lines {
				liters := line.QuantityMl / millilitersPerLiter
				if _, err := s.ledger.Credit(ctx, line.SupplyID, liters); err != nil {
					return err
				}
			}
		}
		return s.repo.Delete(ctx, id)
	})
	return mapError(err)
}

// DeleteAll removes every wash record. Consumption is not reversed; the
// ledger keeps whatever the removed washes already debited.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}

// List returns all recorded washes.
func (s *Service) List(ctx context.Context) ([]*domain.WashingService, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
