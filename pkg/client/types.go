package client

import (
	"encoding/json"
	"time"
)

// Item is a catalog row as the API returns it.
type Item struct {
	ID              int64   `json:"id"`
	ItemName        string  `json:"item_name"`
	ItemCode        string  `json:"item_code"`
	HSNCode         string  `json:"hsn_code"`
	GSTRate         float64 `json:"gst_rate"`
	OpeningValue    float64 `json:"opening_value"`
	OpeningQuantity float64 `json:"opening_quantity"`
}

// Ledger is a party row.
type Ledger struct {
	ID            int64  `json:"id"`
	PartyCode     string `json:"party_code"`
	PartyName     string `json:"party_name"`
	PartyType     string `json:"party_type"`
	Address       string `json:"address"`
	State         string `json:"state"`
	DistrictCode  string `json:"district_code"`
	DistrictName  string `json:"district_name"`
	PostalCode    string `json:"postal_code"`
	GSTIN         string `json:"gstin"`
	PAN           string `json:"pan"`
	ContactPerson string `json:"contact_person"`
	MobileNumber  string `json:"mobile_number"`
	Email         string `json:"email"`
	LedgerMapping string `json:"ledger_mapping"`
	ActiveStatus  string `json:"active_status"`
}

// District is a district master row.
type District struct {
	ID           int64  `json:"id"`
	DistrictName string `json:"district_name"`
	DistrictCode string `json:"district_code"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	ZoneRegion   string `json:"zone_region"`
	ActiveStatus string `json:"active_status"`
	Remarks      string `json:"remarks"`
}

// Order is an order header.
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
}

// OrderItem is one order line.
type OrderItem struct {
	ID     int64   `json:"id"`
	ItemID int64   `json:"item_id"`
	QtyMT  float64 `json:"qty_mt"`
	QtyPcs int64   `json:"qty_pcs"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// OrderWithItems is the editor hydration payload.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// OrderSummary is a header row with line metadata for list views.
type OrderSummary struct {
	Order
	ItemsCount  int64  `json:"items_count"`
	FirstItemID *int64 `json:"item_id,omitempty"`
}

// HeaderInput is the order_header half of a submit payload.
type HeaderInput struct {
	OrderNumber   string  `json:"order_number"`
	LedgerID      int64   `json:"ledger_id"`
	OrderDate     string  `json:"order_date"`
	DeliveryDate  string  `json:"delivery_date,omitempty"`
	Status        string  `json:"status,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	PaymentStatus string  `json:"payment_status,omitempty"`
	PaidAmount    float64 `json:"paid_amount"`
	Remarks       string  `json:"remarks,omitempty"`
}

// LineInput is one order_items entry of a submit payload.
type LineInput struct {
	ItemID int64   `json:"item_id"`
	QtyMT  float64 `json:"qty_mt"`
	QtyPcs int64   `json:"qty_pcs"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// SubmitPayload is the bulk create/update body.
type SubmitPayload struct {
	OrderHeader HeaderInput `json:"order_header"`
	OrderItems  []LineInput `json:"order_items"`
}

// PaymentRequest is the payment patch body.
type PaymentRequest struct {
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod string  `json:"payment_method"`
	PaidAmount    float64 `json:"paid_amount"`
	BalanceDue    float64 `json:"balance_due"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}
