package ledgers

import (
	"fmt"
	"strings"

	"github.com/abs-steel/abs-inventory/internal/masterdata/shared"
)

func (s *Service) validate(l Ledger) error {
	if strings.TrimSpace(l.PartyName) == "" {
		return fmt.Errorf("%w: party_name", shared.ErrRequiredField)
	}
	switch l.PartyType {
	case PartyTypeCustomer, PartyTypeSupplier, PartyTypeDealer:
	default:
		return fmt.Errorf("%w: party_type must be Customer, Supplier or Dealer", shared.ErrValidation)
	}
	switch l.ActiveStatus {
	case shared.StatusActive, shared.StatusInactive:
	default:
		return fmt.Errorf("%w: active_status must be Active or Inactive", shared.ErrValidation)
	}
	return nil
}
