package orders

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abs-steel/abs-inventory/internal/platform/db"
	"github.com/abs-steel/abs-inventory/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Order, error)
	ListWithItemCounts(ctx context.Context) ([]OrderSummary, error)
	Get(ctx context.Context, id int64) (Order, error)
	GetWithItems(ctx context.Context, id int64) (OrderWithItems, error)
	CreateBulk(ctx context.Context, order Order, items []OrderItem) (int64, error)
	UpdateBulk(ctx context.Context, id int64, order Order, items []OrderItem) error
	DeleteCascade(ctx context.Context, id int64) error
	UpdatePayment(ctx context.Context, id int64, p Payment, method string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const orderColumns = `id, order_number, ledger_id, order_date, delivery_date, status,
	payment_method, payment_status, total_amount, paid_amount, balance_due, remarks,
	created_at, updated_at`

func (r *repository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY order_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *repository) ListWithItemCounts(ctx context.Context) ([]OrderSummary, error) {
	query := `SELECT ` + orderColumns + `,
		(SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = orders.id) AS items_count,
		(SELECT oi.item_id FROM order_items oi WHERE oi.order_id = orders.id ORDER BY oi.id LIMIT 1) AS item_id
		FROM orders ORDER BY order_date DESC, id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []OrderSummary{}
	for rows.Next() {
		var s OrderSummary
		if err := rows.Scan(
			&s.ID, &s.OrderNumber, &s.LedgerID, &s.OrderDate, &s.DeliveryDate, &s.Status,
			&s.PaymentMethod, &s.PaymentStatus, &s.TotalAmount, &s.PaidAmount, &s.BalanceDue, &s.Remarks,
			&s.CreatedAt, &s.UpdatedAt, &s.ItemsCount, &s.FirstItemID,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id), &o)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, httpx.ErrNotFound
	}
	return o, err
}

func (r *repository) GetWithItems(ctx context.Context, id int64) (OrderWithItems, error) {
	order, err := r.Get(ctx, id)
	if err != nil {
		return OrderWithItems{}, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, item_id, qty_mt, qty_pcs, rate, amount FROM order_items WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return OrderWithItems{}, err
	}
	defer rows.Close()

	items := []OrderItem{}
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ItemID, &it.QtyMT, &it.QtyPcs, &it.Rate, &it.Amount); err != nil {
			return OrderWithItems{}, err
		}
		items = append(items, it)
	}
	return OrderWithItems{Order: order, Items: items}, rows.Err()
}

func (r *repository) CreateBulk(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	var orderID int64
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		now := time.Now()
		err := tx.QueryRow(ctx,
			`INSERT INTO orders (order_number, ledger_id, order_date, delivery_date, status,
				payment_method, payment_status, total_amount, paid_amount, balance_due, remarks, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`,
			order.OrderNumber, order.LedgerID, order.OrderDate, order.DeliveryDate, order.Status,
			order.PaymentMethod, order.PaymentStatus, order.TotalAmount, order.PaidAmount,
			order.BalanceDue, order.Remarks, now, now,
		).Scan(&orderID)
		if err != nil {
			return err
		}
		return insertItems(ctx, tx, orderID, items)
	})
	return orderID, err
}

func (r *repository) UpdateBulk(ctx context.Context, id int64, order Order, items []OrderItem) error {
	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE orders SET order_number = $1, ledger_id = $2, order_date = $3, delivery_date = $4,
				status = $5, payment_method = $6, payment_status = $7, total_amount = $8,
				paid_amount = $9, balance_due = $10, remarks = $11, updated_at = $12
			WHERE id = $13`,
			order.OrderNumber, order.LedgerID, order.OrderDate, order.DeliveryDate,
			order.Status, order.PaymentMethod, order.PaymentStatus, order.TotalAmount,
			order.PaidAmount, order.BalanceDue, order.Remarks, time.Now(), id,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return httpx.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
			return err
		}
		return insertItems(ctx, tx, id, items)
	})
}

func (r *repository) DeleteCascade(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return httpx.ErrNotFound
		}
		return nil
	})
}

func (r *repository) UpdatePayment(ctx context.Context, id int64, p Payment, method string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET payment_status = $1, payment_method = $2, paid_amount = $3, balance_due = $4, updated_at = $5
		WHERE id = $6`,
		p.Status, method, p.PaidAmount, p.BalanceDue, time.Now(), id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, orderID int64, items []OrderItem) error {
	for _, it := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO order_items (order_id, item_id, qty_mt, qty_pcs, rate, amount)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			orderID, it.ItemID, it.QtyMT, it.QtyPcs, it.Rate, it.Amount,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	list := []Order{}
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row, o *Order) error {
	return row.Scan(
		&o.ID, &o.OrderNumber, &o.LedgerID, &o.OrderDate, &o.DeliveryDate, &o.Status,
		&o.PaymentMethod, &o.PaymentStatus, &o.TotalAmount, &o.PaidAmount, &o.BalanceDue, &o.Remarks,
		&o.CreatedAt, &o.UpdatedAt,
	)
}
