package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abs-steel/abs-inventory/internal/masterdata/items"
	"github.com/abs-steel/abs-inventory/internal/masterdata/ledgers"
	"github.com/abs-steel/abs-inventory/internal/masterdata/shared"
	"github.com/abs-steel/abs-inventory/internal/orders"
)

type fakeSources struct {
	orders  []orders.OrderSummary
	ledgers []ledgers.Ledger
	items   []items.Item
	calls   int
}

func (f *fakeSources) ListWithItemCounts(context.Context) ([]orders.OrderSummary, error) {
	f.calls++
	return f.orders, nil
}

func (f *fakeSources) List(_ context.Context, _ shared.ListFilters) ([]ledgers.Ledger, error) {
	return f.ledgers, nil
}

type fakeItemSource struct {
	items []items.Item
}

func (f *fakeItemSource) List(_ context.Context, _ shared.ListFilters) ([]items.Item, error) {
	return f.items, nil
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC)
	}
}

func testSources() (*fakeSources, *fakeItemSource) {
	itemID := int64(7)
	src := &fakeSources{
		orders: []orders.OrderSummary{
			{
				Order: orders.Order{
					ID:            1,
					OrderNumber:   "ORD-001",
					LedgerID:      4,
					OrderDate:     time.Date(2025, 8, 14, 9, 0, 0, 0, time.UTC),
					Status:        orders.StatusPending,
					PaymentStatus: orders.PaymentPartial,
					TotalAmount:   1000,
					PaidAmount:    400,
					BalanceDue:    600,
				},
				ItemsCount:  2,
				FirstItemID: &itemID,
			},
			{
				Order: orders.Order{
					ID:            2,
					OrderNumber:   "ORD-002",
					LedgerID:      99,
					OrderDate:     time.Date(2025, 8, 13, 9, 0, 0, 0, time.UTC),
					Status:        orders.StatusDispatched,
					PaymentStatus: orders.PaymentPaid,
					TotalAmount:   500,
					PaidAmount:    500,
				},
			},
		},
		ledgers: []ledgers.Ledger{{ID: 4, PartyName: "Sharma Traders", State: "Odisha"}},
	}
	return src, &fakeItemSource{items: []items.Item{{ID: 7, ItemName: "TMT Bar 12mm"}}}
}

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestSummaryAggregates(t *testing.T) {
	src, itemSrc := testSources()
	svc := NewService(src, src, itemSrc, NewCache(nil, 0), slog.New(slog.NewTextHandler(io.Discard, nil)), WithNow(fixedClock()))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1500.0, summary.Stats.Revenue)
	assert.Equal(t, 500.0, summary.Stats.CollectedRevenue)
	assert.Equal(t, 600.0, summary.Stats.OutstandingBalance)
	assert.Equal(t, 1, summary.Stats.PendingOrders)
	assert.Equal(t, 1, summary.Stats.TotalDispatched)
	assert.Equal(t, 2, summary.Stats.TotalOrders)
	assert.Equal(t, 1, summary.Stats.TotalItems)
	assert.Equal(t, 1, summary.Stats.TotalLedgers)

	require.Len(t, summary.DailyTrends, 30)
	assert.Equal(t, 1, summary.DailyTrends[29].OrderCount)

	require.Len(t, summary.RecentPending, 1)
	assert.Equal(t, "Sharma Traders", summary.RecentPending[0].PartyName)
	assert.Equal(t, "TMT Bar 12mm", summary.RecentPending[0].ItemName)

	require.Len(t, summary.RecentDispatched, 1)
	// missing ledger falls back to a placeholder
	assert.Equal(t, "Party 99", summary.RecentDispatched[0].PartyName)

	require.Len(t, summary.SalesByState, 1)
	assert.Equal(t, "Odisha", summary.SalesByState[0].State)
	assert.Equal(t, 1000.0, summary.SalesByState[0].Amount)
}

func TestSummaryUsesCache(t *testing.T) {
	src, itemSrc := testSources()
	cache := NewCache(newRedisClient(t), time.Minute)
	svc := NewService(src, src, itemSrc, cache, slog.New(slog.NewTextHandler(io.Discard, nil)), WithNow(fixedClock()))

	ctx := context.Background()
	first, err := svc.Summary(ctx)
	require.NoError(t, err)
	second, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Stats, second.Stats)
	assert.Equal(t, 1, src.calls)
}

func TestInvalidateBumpsVersion(t *testing.T) {
	src, itemSrc := testSources()
	cache := NewCache(newRedisClient(t), time.Minute)
	svc := NewService(src, src, itemSrc, cache, slog.New(slog.NewTextHandler(io.Discard, nil)), WithNow(fixedClock()))

	ctx := context.Background()
	_, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, src.calls)

	svc.Invalidate(ctx)

	_, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestRefreshRecomputes(t *testing.T) {
	src, itemSrc := testSources()
	cache := NewCache(newRedisClient(t), time.Minute)
	svc := NewService(src, src, itemSrc, cache, slog.New(slog.NewTextHandler(io.Discard, nil)), WithNow(fixedClock()))

	ctx := context.Background()
	_, err := svc.Summary(ctx)
	require.NoError(t, err)

	_, err = svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
}

func TestCacheVersioning(t *testing.T) {
	cache := NewCache(newRedisClient(t), time.Minute)
	ctx := context.Background()

	ver, err := cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ver)

	key1, err := cache.BuildKey(ctx, keySummary("2025-08-14"))
	require.NoError(t, err)

	require.NoError(t, cache.Bump(ctx))

	key2, err := cache.BuildKey(ctx, keySummary("2025-08-14"))
	require.NoError(t, err)
	assert.NotEqual(t, key1, key2)
}
