// Package dashboard aggregates orders, ledgers and items into the
// summary the admin console's landing page renders.
package dashboard

import "time"

// Stats are the headline counters and revenue figures.
type Stats struct {
	Revenue            float64 `json:"revenue"`
	CollectedRevenue   float64 `json:"collected_revenue"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	PendingOrders      int     `json:"pending_orders"`
	TotalOrders        int     `json:"total_orders"`
	TotalDispatched    int     `json:"total_dispatched"`
	TotalItems         int     `json:"total_items"`
	TotalLedgers       int     `json:"total_ledgers"`
}

// DailyTrend is one calendar-day bucket of the 30-day order trend.
type DailyTrend struct {
	Day        int     `json:"day"`
	OrderCount int     `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

// StatusSlice is one wedge of the status breakdown chart.
type StatusSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// StateSales is one row of the sales-by-state ranking.
type StateSales struct {
	State  string  `json:"state"`
	Amount float64 `json:"amount"`
}

// RecentOrder is a row in the recent pending/dispatched tables, with
// party and item names already resolved.
type RecentOrder struct {
	ID          int64     `json:"id"`
	OrderNumber string    `json:"order_number"`
	PartyName   string    `json:"party_name"`
	ItemName    string    `json:"item_name"`
	OrderDate   time.Time `json:"order_date"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
}

// Summary is the full dashboard payload.
type Summary struct {
	Stats            Stats         `json:"stats"`
	DailyTrends      []DailyTrend  `json:"daily_trends"`
	StatusBreakdown  []StatusSlice `json:"status_breakdown"`
	SalesByState     []StateSales  `json:"sales_by_state"`
	RecentPending    []RecentOrder `json:"recent_pending"`
	RecentDispatched []RecentOrder `json:"recent_dispatched"`
	GeneratedAt      time.Time     `json:"generated_at"`
}
