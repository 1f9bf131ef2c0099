package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/abs-steel/abs-inventory/internal/masterdata/ledgers"
	"github.com/abs-steel/abs-inventory/internal/orders"
)

const trendDays = 30

// RevenueMetrics computes the three revenue figures. The outstanding
// filter keeps the historical `!= Paid || == Partial` form from the
// console even though the second clause is subsumed by the first; see
// DESIGN.md for the open question on intent.
func RevenueMetrics(orderList []orders.OrderSummary) (total, collected, outstanding float64) {
	for _, o := range orderList {
		total += o.TotalAmount
		if o.PaymentStatus == orders.PaymentPaid {
			collected += o.PaidAmount
		}
		if o.PaymentStatus != orders.PaymentPaid || o.PaymentStatus == orders.PaymentPartial {
			outstanding += o.BalanceDue
		}
	}
	return total, collected, outstanding
}

// DailyTrends buckets orders into the 30 calendar days ending at ref,
// inclusive. Matching is by calendar day, not a rolling 24h window.
func DailyTrends(orderList []orders.OrderSummary, ref time.Time) []DailyTrend {
	trends := make([]DailyTrend, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		y, m, d := day.Date()

		bucket := DailyTrend{Day: d}
		for _, o := range orderList {
			oy, om, od := o.OrderDate.Date()
			if oy == y && om == m && od == d {
				bucket.OrderCount++
				bucket.Revenue += o.TotalAmount
			}
		}
		trends = append(trends, bucket)
	}
	return trends
}

// StatusBreakdown counts dispatched and pending orders. The cancelled
// wedge is a placeholder at a tenth of the order count, kept for parity
// with the console until real cancellation data is surfaced.
func StatusBreakdown(orderList []orders.OrderSummary) []StatusSlice {
	var completed, pending int
	for _, o := range orderList {
		switch o.Status {
		case orders.StatusDispatched:
			completed++
		case orders.StatusPending:
			pending++
		}
	}
	cancelled := int(math.Floor(float64(len(orderList)) * 0.1))

	return []StatusSlice{
		{Name: "Completed", Value: completed},
		{Name: "Pending", Value: pending},
		{Name: "Cancelled", Value: cancelled},
	}
}

// SalesByState totals order amounts by the ordering party's state and
// returns the top five. Orders whose ledger is missing or has no state
// are skipped.
func SalesByState(orderList []orders.OrderSummary, ledgerList []ledgers.Ledger) []StateSales {
	byID := make(map[int64]ledgers.Ledger, len(ledgerList))
	for _, l := range ledgerList {
		byID[l.ID] = l
	}

	totals := map[string]float64{}
	for _, o := range orderList {
		ledger, ok := byID[o.LedgerID]
		if !ok || ledger.State == "" {
			continue
		}
		totals[ledger.State] += o.TotalAmount
	}

	sales := make([]StateSales, 0, len(totals))
	for state, amount := range totals {
		sales = append(sales, StateSales{State: state, Amount: amount})
	}
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Amount != sales[j].Amount {
			return sales[i].Amount > sales[j].Amount
		}
		return sales[i].State < sales[j].State
	})
	if len(sales) > 5 {
		sales = sales[:5]
	}
	return sales
}
