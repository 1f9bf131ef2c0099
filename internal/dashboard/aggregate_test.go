package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abs-steel/abs-inventory/internal/masterdata/ledgers"
	"github.com/abs-steel/abs-inventory/internal/orders"
)

func summaryRow(id int64, status, paymentStatus string, total, paid, balance float64) orders.OrderSummary {
	return orders.OrderSummary{Order: orders.Order{
		ID:            id,
		LedgerID:      id,
		Status:        status,
		PaymentStatus: paymentStatus,
		TotalAmount:   total,
		PaidAmount:    paid,
		BalanceDue:    balance,
	}}
}

func TestRevenueMetrics(t *testing.T) {
	rows := []orders.OrderSummary{
		summaryRow(1, orders.StatusPending, orders.PaymentPaid, 1000, 1000, 0),
		summaryRow(2, orders.StatusPending, orders.PaymentPartial, 500, 200, 300),
		summaryRow(3, orders.StatusDispatched, orders.PaymentUnpaid, 250, 0, 250),
	}

	total, collected, outstanding := RevenueMetrics(rows)

	assert.Equal(t, 1750.0, total)
	assert.Equal(t, 1000.0, collected)
	assert.Equal(t, 550.0, outstanding)
}

func TestRevenueMetricsEmpty(t *testing.T) {
	total, collected, outstanding := RevenueMetrics(nil)

	assert.Zero(t, total)
	assert.Zero(t, collected)
	assert.Zero(t, outstanding)
}

func TestDailyTrendsBuckets(t *testing.T) {
	ref := time.Date(2025, 8, 14, 15, 30, 0, 0, time.UTC)

	rows := []orders.OrderSummary{
		{Order: orders.Order{OrderDate: time.Date(2025, 8, 14, 9, 0, 0, 0, time.UTC), TotalAmount: 100}},
		{Order: orders.Order{OrderDate: time.Date(2025, 8, 14, 23, 0, 0, 0, time.UTC), TotalAmount: 50}},
		{Order: orders.Order{OrderDate: time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC), TotalAmount: 30}},
		// outside the 30-day window
		{Order: orders.Order{OrderDate: time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC), TotalAmount: 999}},
		{Order: orders.Order{OrderDate: time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC), TotalAmount: 999}},
	}

	trends := DailyTrends(rows, ref)

	require.Len(t, trends, 30)

	last := trends[29]
	assert.Equal(t, 14, last.Day)
	assert.Equal(t, 2, last.OrderCount)
	assert.Equal(t, 150.0, last.Revenue)

	first := trends[0]
	assert.Equal(t, 16, first.Day)
	assert.Equal(t, 1, first.OrderCount)
	assert.Equal(t, 30.0, first.Revenue)

	var counted int
	for _, b := range trends {
		counted += b.OrderCount
	}
	assert.Equal(t, 3, counted)
}

func TestDailyTrendsEmptyOrders(t *testing.T) {
	trends := DailyTrends(nil, time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC))

	require.Len(t, trends, 30)
	for _, b := range trends {
		assert.Zero(t, b.OrderCount)
		assert.Zero(t, b.Revenue)
	}
}

func TestStatusBreakdown(t *testing.T) {
	rows := make([]orders.OrderSummary, 0, 25)
	for i := 0; i < 12; i++ {
		rows = append(rows, summaryRow(int64(i), orders.StatusDispatched, orders.PaymentPaid, 0, 0, 0))
	}
	for i := 0; i < 10; i++ {
		rows = append(rows, summaryRow(int64(100+i), orders.StatusPending, orders.PaymentUnpaid, 0, 0, 0))
	}
	for i := 0; i < 3; i++ {
		rows = append(rows, summaryRow(int64(200+i), orders.StatusDelivered, orders.PaymentPaid, 0, 0, 0))
	}

	slices := StatusBreakdown(rows)

	require.Len(t, slices, 3)
	assert.Equal(t, StatusSlice{Name: "Completed", Value: 12}, slices[0])
	assert.Equal(t, StatusSlice{Name: "Pending", Value: 10}, slices[1])
	// placeholder wedge: a tenth of the 25 orders, floored
	assert.Equal(t, StatusSlice{Name: "Cancelled", Value: 2}, slices[2])
}

func TestSalesByStateTopFive(t *testing.T) {
	states := []string{"Odisha", "Bihar", "Assam", "Kerala", "Punjab", "Goa"}
	ledgerList := make([]ledgers.Ledger, 0, len(states))
	rows := make([]orders.OrderSummary, 0, len(states))
	for i, state := range states {
		id := int64(i + 1)
		ledgerList = append(ledgerList, ledgers.Ledger{ID: id, State: state})
		rows = append(rows, orders.OrderSummary{Order: orders.Order{
			LedgerID:    id,
			TotalAmount: float64(100 * (i + 1)),
		}})
	}

	sales := SalesByState(rows, ledgerList)

	require.Len(t, sales, 5)
	assert.Equal(t, "Goa", sales[0].State)
	assert.Equal(t, 600.0, sales[0].Amount)
	assert.Equal(t, "Bihar", sales[4].State)
	// the smallest state was cut
	for _, s := range sales {
		assert.NotEqual(t, "Odisha", s.State)
	}
}

func TestSalesByStateSkipsUnmatchedOrders(t *testing.T) {
	ledgerList := []ledgers.Ledger{
		{ID: 1, State: "Odisha"},
		{ID: 2, State: ""},
	}
	rows := []orders.OrderSummary{
		{Order: orders.Order{LedgerID: 1, TotalAmount: 100}},
		{Order: orders.Order{LedgerID: 1, TotalAmount: 50}},
		// ledger without state
		{Order: orders.Order{LedgerID: 2, TotalAmount: 999}},
		// missing ledger
		{Order: orders.Order{LedgerID: 42, TotalAmount: 999}},
	}

	sales := SalesByState(rows, ledgerList)

	require.Len(t, sales, 1)
	assert.Equal(t, StateSales{State: "Odisha", Amount: 150}, sales[0])
}
