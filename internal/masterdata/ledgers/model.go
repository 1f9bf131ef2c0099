package ledgers

import "time"

// PartyType classifies a ledger entity.
type PartyType string

const (
	PartyTypeCustomer PartyType = "Customer"
	PartyTypeSupplier PartyType = "Supplier"
	PartyTypeDealer   PartyType = "Dealer"
)

// Ledger is a party (customer, supplier or dealer) that orders are booked
// against. The dashboard joins orders to ledgers by id to bucket sales by
// state, and the console falls back to "Party {id}" when an order references
// a ledger that is missing here.
type Ledger struct {
	ID            int64     `json:"id"`
	PartyCode     string    `json:"party_code"`
	PartyName     string    `json:"party_name"`
	PartyType     PartyType `json:"party_type"`
	Address       string    `json:"address"`
	State         string    `json:"state"`
	DistrictCode  string    `json:"district_code"`
	DistrictName  string    `json:"district_name"`
	PostalCode    string    `json:"postal_code"`
	GSTIN         string    `json:"gstin"`
	PAN           string    `json:"pan"`
	ContactPerson string    `json:"contact_person"`
	MobileNumber  string    `json:"mobile_number"`
	Email         string    `json:"email"`
	LedgerMapping string    `json:"ledger_mapping"`
	ActiveStatus  string    `json:"active_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
