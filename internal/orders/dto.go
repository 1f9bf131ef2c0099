package orders

import "time"

// SubmitPayload is the bulk create/update body the console sends: one
// header plus every surviving line item.
type SubmitPayload struct {
	OrderHeader HeaderInput `json:"order_header" validate:"required"`
	OrderItems  []LineInput `json:"order_items" validate:"required,min=1,dive"`
}

type HeaderInput struct {
	OrderNumber   string  `json:"order_number" validate:"required"`
	LedgerID      int64   `json:"ledger_id" validate:"required,gt=0"`
	OrderDate     string  `json:"order_date" validate:"required"`
	DeliveryDate  string  `json:"delivery_date"`
	Status        string  `json:"status" validate:"omitempty,oneof=Pending Dispatched Delivered Cancelled"`
	PaymentMethod string  `json:"payment_method"`
	PaymentStatus string  `json:"payment_status" validate:"omitempty,oneof=Paid Unpaid Partial"`
	PaidAmount    float64 `json:"paid_amount" validate:"gte=0"`
	Remarks       string  `json:"remarks"`
}

type LineInput struct {
	ItemID int64   `json:"item_id" validate:"required,gt=0"`
	QtyMT  float64 `json:"qty_mt" validate:"gte=0"`
	QtyPcs int64   `json:"qty_pcs" validate:"gte=0"`
	Rate   float64 `json:"rate" validate:"gte=0"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

// PaymentRequest is the body of the payment patch endpoint.
type PaymentRequest struct {
	PaymentStatus string  `json:"payment_status" validate:"omitempty,oneof=Paid Unpaid Partial"`
	PaymentMethod string  `json:"payment_method"`
	PaidAmount    float64 `json:"paid_amount" validate:"gte=0"`
	BalanceDue    float64 `json:"balance_due" validate:"gte=0"`
}

const dateLayout = "2006-01-02"

// parseDate accepts the console's yyyy-mm-dd date strings, falling back
// to RFC3339 for callers that send full timestamps.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
