package dashboard

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abs-steel/abs-inventory/internal/masterdata/items"
	"github.com/abs-steel/abs-inventory/internal/masterdata/ledgers"
	"github.com/abs-steel/abs-inventory/internal/masterdata/shared"
	"github.com/abs-steel/abs-inventory/internal/orders"
	"github.com/abs-steel/abs-inventory/internal/orders/editor"
)

const recentLimit = 5

// OrderSource supplies the order rows the dashboard aggregates.
type OrderSource interface {
	ListWithItemCounts(ctx context.Context) ([]orders.OrderSummary, error)
}

// LedgerSource supplies the party reference set.
type LedgerSource interface {
	List(ctx context.Context, filters shared.ListFilters) ([]ledgers.Ledger, error)
}

// ItemSource supplies the item catalog.
type ItemSource interface {
	List(ctx context.Context, filters shared.ListFilters) ([]items.Item, error)
}

type Service struct {
	ordersSrc  OrderSource
	ledgersSrc LedgerSource
	itemsSrc   ItemSource
	cache      *Cache
	logger     *slog.Logger
	now        func() time.Time
}

// Option customises service construction.
type Option func(*Service)

// WithNow overrides the clock, which the trend tests pin to a fixed day.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(ordersSrc OrderSource, ledgersSrc LedgerSource, itemsSrc ItemSource, cache *Cache, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		ordersSrc:  ordersSrc,
		ledgersSrc: ledgersSrc,
		itemsSrc:   itemsSrc,
		cache:      cache,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary returns the aggregated dashboard, served from cache when a
// current version exists for today's key.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	ref := s.now()
	key, err := s.cache.BuildKey(ctx, keySummary(ref.Format("2006-01-02")))
	if err != nil {
		s.logger.Warn("dashboard cache key unavailable", "error", err)
		return s.compute(ctx, ref)
	}

	var summary Summary
	err = s.cache.FetchJSON(ctx, key, &summary, func(ctx context.Context) (interface{}, error) {
		return s.compute(ctx, ref)
	})
	return summary, err
}

// Refresh recomputes and caches the summary, bypassing any cached copy.
// The warmup job calls this after bumping the version.
func (s *Service) Refresh(ctx context.Context) (Summary, error) {
	ref := s.now()
	summary, err := s.compute(ctx, ref)
	if err != nil {
		return Summary{}, err
	}
	key, err := s.cache.BuildKey(ctx, keySummary(ref.Format("2006-01-02")))
	if err != nil {
		return summary, nil
	}
	if err := s.cache.StoreJSON(ctx, key, summary); err != nil {
		s.logger.Warn("dashboard cache store failed", "error", err)
	}
	return summary, nil
}

// Invalidate bumps the cache version after an order write.
func (s *Service) Invalidate(ctx context.Context) {
	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("dashboard cache bump failed", "error", err)
	}
}

func (s *Service) compute(ctx context.Context, ref time.Time) (Summary, error) {
	var (
		orderList  []orders.OrderSummary
		ledgerList []ledgers.Ledger
		itemList   []items.Item
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orderList, err = s.ordersSrc.ListWithItemCounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		ledgerList, err = s.ledgersSrc.List(gctx, shared.ListFilters{})
		return err
	})
	g.Go(func() error {
		var err error
		itemList, err = s.itemsSrc.List(gctx, shared.ListFilters{})
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	total, collected, outstanding := RevenueMetrics(orderList)
	var pending, dispatched int
	for _, o := range orderList {
		switch o.Status {
		case orders.StatusPending:
			pending++
		case orders.StatusDispatched:
			dispatched++
		}
	}

	names := editor.NewRefData(itemList, ledgerList)

	return Summary{
		Stats: Stats{
			Revenue:            total,
			CollectedRevenue:   collected,
			OutstandingBalance: outstanding,
			PendingOrders:      pending,
			TotalOrders:        len(orderList),
			TotalDispatched:    dispatched,
			TotalItems:         len(itemList),
			TotalLedgers:       len(ledgerList),
		},
		DailyTrends:      DailyTrends(orderList, ref),
		StatusBreakdown:  StatusBreakdown(orderList),
		SalesByState:     SalesByState(orderList, ledgerList),
		RecentPending:    recentOrders(orderList, orders.StatusPending, names),
		RecentDispatched: recentOrders(orderList, orders.StatusDispatched, names),
		GeneratedAt:      ref,
	}, nil
}

// recentOrders takes the newest rows with the given status. The order
// list arrives sorted newest first, so a forward scan suffices.
func recentOrders(orderList []orders.OrderSummary, status string, names *editor.RefData) []RecentOrder {
	recent := []RecentOrder{}
	for _, o := range orderList {
		if o.Status != status {
			continue
		}
		row := RecentOrder{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			PartyName:   names.PartyName(o.LedgerID),
			OrderDate:   o.OrderDate,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
		}
		if o.FirstItemID != nil {
			row.ItemName = names.ItemName(*o.FirstItemID)
		}
		recent = append(recent, row)
		if len(recent) == recentLimit {
			break
		}
	}
	return recent
}
