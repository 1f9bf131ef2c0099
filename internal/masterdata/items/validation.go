package items

import (
	"fmt"
	"strings"

	"github.com/abs-steel/abs-inventory/internal/masterdata/shared"
)

func (s *Service) validate(it Item) error {
	if strings.TrimSpace(it.ItemName) == "" {
		return fmt.Errorf("%w: item_name", shared.ErrRequiredField)
	}
	if it.GSTRate < 0 || it.GSTRate > 100 {
		return fmt.Errorf("%w: gst_rate must be between 0 and 100", shared.ErrValidation)
	}
	if it.OpeningValue < 0 {
		return fmt.Errorf("%w: opening_value cannot be negative", shared.ErrValidation)
	}
	if it.OpeningQuantity < 0 {
		return fmt.Errorf("%w: opening_quantity cannot be negative", shared.ErrValidation)
	}
	return nil
}
