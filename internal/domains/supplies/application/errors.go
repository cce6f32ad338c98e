package application

import (
	"errors"
	"fmt"

	"github.com/devsystem/carwash-erp/internal/domains/supplies/domain"
)

// ErrInvalidInput signals the request violated a ledger invariant.
var ErrInvalidInput = errors.New("invalid supply input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
