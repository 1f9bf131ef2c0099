package districts

import "time"

// District is a geographic reference record ledgers link to through
// district_code.
type District struct {
	ID           int64     `json:"id"`
	DistrictName string    `json:"district_name"`
	DistrictCode string    `json:"district_code"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postal_code"`
	ZoneRegion   string    `json:"zone_region"`
	ActiveStatus string    `json:"active_status"`
	Remarks      string    `json:"remarks"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
