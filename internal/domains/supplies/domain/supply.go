package domain

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyName rejects restocks that do not carry a supply name.
	ErrEmptyName = errors.New("supply name is mandatory")
)

// skuBaseMaxLen caps the derived SKU prefix before the sequence suffix.
const skuBaseMaxLen = 10

// Supply models a consumable tracked by the inventory ledger.
// CurrentQuantity is expressed in liters and is never negative.
type Supply struct {
	ID              int64
	Name            string
	SKU             string
	CurrentQuantity float64
}

// NewSupply validates and constructs a supply, deriving a SKU when none is given.
func NewSupply(name, sku string, quantity float64) (*Supply, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(sku) == "" {
		sku = DeriveSKU(name)
	}
	if quantity < 0 {
		quantity = 0
	}
	return &Supply{Name: name, SKU: sku, CurrentQuantity: quantity}, nil
}

// DeriveSKU builds a deterministic SKU from a supply name:
// uppercase, trimmed, spaces to underscores, cut to 10 characters, "-001" suffix.
func DeriveSKU(name string) string {
	base := strings.ReplaceAll(strings.TrimSpace(strings.ToUpper(name)), " ", "_")
	if runes := []rune(base); len(runes) > skuBaseMaxLen {
		base = string(runes[:skuBaseMaxLen])
	}
	return base + "-001"
}

// MatchesName reports whether the supply's natural key equals name, ignoring case.
func (s *Supply) MatchesName(name string) bool {
	return strings.EqualFold(s.Name, name)
}

// AddStock credits the tracked quantity unconditionally.
func (s *Supply) AddStock(liters float64) float64 {
	s.CurrentQuantity += liters
	return s.CurrentQuantity
}

// Drain debits the tracked quantity, clamping at zero so stock is never
// over-consumed on paper.
func (s *Supply) Drain(liters float64) float64 {
	next := s.CurrentQuantity - liters
	if next < 0 {
		next = 0
	}
	s.CurrentQuantity = next
	return s.CurrentQuantity
}

// Reset zeroes the tracked quantity, keeping name and SKU intact.
func (s *Supply) Reset() {
	s.CurrentQuantity = 0
}
