package items

import "time"

// Item is a catalog entry. The order editor copies item_code, hsn_code and
// gst_rate onto order lines at selection time and uses opening_value as the
// default rate.
type Item struct {
	ID              int64     `json:"id"`
	ItemName        string    `json:"item_name"`
	ItemCode        string    `json:"item_code"`
	HSNCode         string    `json:"hsn_code"`
	GSTRate         float64   `json:"gst_rate"`
	OpeningValue    float64   `json:"opening_value"`
	OpeningQuantity float64   `json:"opening_quantity"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
