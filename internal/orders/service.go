package orders

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/abs-steel/abs-inventory/internal/notify"
	"github.com/abs-steel/abs-inventory/internal/platform/httpx"
)

type Service struct {
	repo   Repository
	events notify.Events
	logger *slog.Logger
}

func NewService(repo Repository, events notify.Events, logger *slog.Logger) *Service {
	if events == nil {
		events = notify.Nop()
	}
	return &Service{repo: repo, events: events, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListWithItemCounts(ctx context.Context) ([]OrderSummary, error) {
	return s.repo.ListWithItemCounts(ctx)
}

func (s *Service) GetWithItems(ctx context.Context, id int64) (OrderWithItems, error) {
	if id <= 0 {
		return OrderWithItems{}, httpx.ErrValidation
	}
	return s.repo.GetWithItems(ctx, id)
}

// Create persists a submit payload as a new order with its lines in one
// transaction. The total is always recomputed from the lines, never
// trusted from the client.
func (s *Service) Create(ctx context.Context, payload SubmitPayload) (int64, error) {
	order, items, err := s.build(payload)
	if err != nil {
		return 0, err
	}
	id, err := s.repo.CreateBulk(ctx, order, items)
	if err != nil {
		return 0, err
	}
	s.logger.Info("order created", "order_id", id, "order_number", order.OrderNumber)
	s.events.OrdersChanged(ctx)
	return id, nil
}

// Update replaces an order's header and its full set of lines.
func (s *Service) Update(ctx context.Context, id int64, payload SubmitPayload) error {
	if id <= 0 {
		return httpx.ErrValidation
	}
	order, items, err := s.build(payload)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateBulk(ctx, id, order, items); err != nil {
		return err
	}
	s.logger.Info("order updated", "order_id", id)
	s.events.OrdersChanged(ctx)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return httpx.ErrValidation
	}
	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}
	s.logger.Info("order deleted", "order_id", id)
	s.events.OrdersChanged(ctx)
	return nil
}

// UpdatePayment applies a payment patch. The status and balance are
// re-derived from the stored total, so a stale client cannot flip an
// order to Paid with a short payment.
func (s *Service) UpdatePayment(ctx context.Context, id int64, req PaymentRequest) (Order, error) {
	if id <= 0 {
		return Order{}, httpx.ErrValidation
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return Order{}, err
	}

	payment := DerivePaymentAmount(current.TotalAmount, req.PaidAmount)
	method := NormalizeMethod(req.PaymentMethod)
	if err := s.repo.UpdatePayment(ctx, id, payment, method); err != nil {
		return Order{}, err
	}
	s.logger.Info("payment updated", "order_id", id, "payment_status", payment.Status)
	s.events.OrdersChanged(ctx)
	return s.repo.Get(ctx, id)
}

func (s *Service) build(payload SubmitPayload) (Order, []OrderItem, error) {
	h := payload.OrderHeader

	orderDate, err := parseDate(h.OrderDate)
	if err != nil {
		return Order{}, nil, fmt.Errorf("%w: invalid order_date %q", httpx.ErrValidation, h.OrderDate)
	}
	var deliveryDate *time.Time
	if h.DeliveryDate != "" {
		d, err := parseDate(h.DeliveryDate)
		if err != nil {
			return Order{}, nil, fmt.Errorf("%w: invalid delivery_date %q", httpx.ErrValidation, h.DeliveryDate)
		}
		deliveryDate = &d
	}

	items := make([]OrderItem, 0, len(payload.OrderItems))
	total := 0.0
	for _, in := range payload.OrderItems {
		amount := lineAmount(in.QtyMT, in.QtyPcs, in.Rate)
		total += amount
		items = append(items, OrderItem{
			ItemID: in.ItemID,
			QtyMT:  in.QtyMT,
			QtyPcs: in.QtyPcs,
			Rate:   in.Rate,
			Amount: amount,
		})
	}
	total = math.Round(total*100) / 100

	status := h.Status
	if status == "" {
		status = StatusPending
	}
	payment := DerivePaymentAmount(total, h.PaidAmount)

	return Order{
		OrderNumber:   h.OrderNumber,
		LedgerID:      h.LedgerID,
		OrderDate:     orderDate,
		DeliveryDate:  deliveryDate,
		Status:        status,
		PaymentMethod: NormalizeMethod(h.PaymentMethod),
		PaymentStatus: payment.Status,
		TotalAmount:   total,
		PaidAmount:    payment.PaidAmount,
		BalanceDue:    payment.BalanceDue,
		Remarks:       h.Remarks,
	}, items, nil
}

// lineAmount mirrors the editor's rule: the metric-ton quantity wins
// when present, otherwise pieces, rounded to two decimals.
func lineAmount(qtyMT float64, qtyPcs int64, rate float64) float64 {
	qty := qtyMT
	if qty <= 0 {
		qty = float64(qtyPcs)
	}
	return math.Round(qty*rate*100) / 100
}
