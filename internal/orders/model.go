// Package orders implements the order aggregate: headers, line items,
// payment derivation and the bulk create/update/delete operations the
// admin console drives.
package orders

import "time"

const (
	StatusPending    = "Pending"
	StatusDispatched = "Dispatched"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

const (
	PaymentPaid    = "Paid"
	PaymentUnpaid  = "Unpaid"
	PaymentPartial = "Partial"
)

const (
	MethodCash   = "Cash"
	MethodOnline = "Online"
	MethodCheque = "Cheque"
	MethodCOD    = "COD"
	MethodCredit = "Credit"
)

type Order struct {
	ID            int64      `json:"id"`
	OrderNumber   string     `json:"order_number"`
	LedgerID      int64      `json:"ledger_id"`
	OrderDate     time.Time  `json:"order_date"`
	DeliveryDate  *time.Time `json:"delivery_date,omitempty"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method"`
	PaymentStatus string     `json:"payment_status"`
	TotalAmount   float64    `json:"total_amount"`
	PaidAmount    float64    `json:"paid_amount"`
	BalanceDue    float64    `json:"balance_due"`
	Remarks       string     `json:"remarks"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type OrderItem struct {
	ID      int64   `json:"id"`
	OrderID int64   `json:"order_id"`
	ItemID  int64   `json:"item_id"`
	QtyMT   float64 `json:"qty_mt"`
	QtyPcs  int64   `json:"qty_pcs"`
	Rate    float64 `json:"rate"`
	Amount  float64 `json:"amount"`
}

// OrderWithItems is the hydration payload for the order editor.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// OrderSummary is a header row enriched with an item count and the first
// line's item id, as the orders list table renders it.
type OrderSummary struct {
	Order
	ItemsCount  int64  `json:"items_count"`
	FirstItemID *int64 `json:"item_id,omitempty"`
}

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusDispatched, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// NormalizeMethod maps unknown payment methods to Cash, matching how the
// payment modal falls back when an order carries a method outside the
// selectable set.
func NormalizeMethod(method string) string {
	switch method {
	case MethodCash, MethodOnline, MethodCheque, MethodCOD, MethodCredit:
		return method
	}
	return MethodCash
}
