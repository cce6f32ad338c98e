package ports

import "context"

// RecipeLine is one consumption rule as the accounting engine sees it:
// which supply to debit and how many milliliters one service consumes.
type RecipeLine struct {
	SupplyID   int64
	SupplyName string
	QuantityMl float64
}

// RecipeSource resolves the consumption recipe for a vehicle type.
// A vehicle type without a recipe yields an empty slice, not an error.
type RecipeSource interface {
	RulesFor(ctx context.Context, vehicleTypeID int64) ([]RecipeLine, error)
}

// StockLedger is the accounting engine's view of the supply ledger.
// Debit clamps at zero; Credit is unconditional.
type StockLedger interface {
	Debit(ctx context.Context, supplyID int64, liters float64) (float64, error)
	Credit(ctx context.Context, supplyID int64, liters float64) (float64, error)
}

// UnitOfWork brackets one request: every ledger mutation and record write made
// through the derived context commits or rolls back together.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
