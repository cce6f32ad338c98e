package application

import (
	"errors"
	"fmt"

	"github.com/devsystem/carwash-erp/internal/domains/washes/domain"
)

// ErrInvalidInput signals the request violated a wash invariant.
var ErrInvalidInput = errors.New("invalid washing service input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingVehicleType) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
