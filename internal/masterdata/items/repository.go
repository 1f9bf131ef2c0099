package items

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abs-steel/abs-inventory/internal/masterdata/shared"
)

type Repository interface {
	List(ctx context.Context, filters shared.ListFilters) ([]Item, error)
	Get(ctx context.Context, id int64) (Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	Update(ctx context.Context, id int64, item Item) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const itemColumns = `id, item_name, item_code, hsn_code, gst_rate, opening_value, opening_quantity, created_at, updated_at`

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		query += ` AND (item_name ILIKE $` + strconv.Itoa(argCount) + ` OR item_code ILIKE $` + strconv.Itoa(argCount) + `)`
		args = append(args, "%"+filters.Search+"%")
	}

	query += ` ORDER BY ` + sortOrder(filters.SortBy, filters.SortDir)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	var it Item
	err := scanItem(r.db.QueryRow(ctx, query, id), &it)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, shared.ErrNotFound
	}
	return it, err
}

func (r *repository) Create(ctx context.Context, item Item) (Item, error) {
	query := `INSERT INTO items (item_name, item_code, hsn_code, gst_rate, opening_value, opening_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		item.ItemName, item.ItemCode, item.HSNCode, item.GSTRate,
		item.OpeningValue, item.OpeningQuantity, now, now,
	).Scan(&item.ID)
	if shared.DuplicateKey(err) {
		return Item{}, shared.ErrDuplicate
	}
	if err != nil {
		return Item{}, err
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	return item, nil
}

func (r *repository) Update(ctx context.Context, id int64, item Item) error {
	query := `UPDATE items SET item_name = $1, item_code = $2, hsn_code = $3, gst_rate = $4,
		opening_value = $5, opening_quantity = $6, updated_at = $7 WHERE id = $8`
	tag, err := r.db.Exec(ctx, query,
		item.ItemName, item.ItemCode, item.HSNCode, item.GSTRate,
		item.OpeningValue, item.OpeningQuantity, time.Now(), id,
	)
	if shared.DuplicateKey(err) {
		return shared.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row, it *Item) error {
	return row.Scan(&it.ID, &it.ItemName, &it.ItemCode, &it.HSNCode, &it.GSTRate,
		&it.OpeningValue, &it.OpeningQuantity, &it.CreatedAt, &it.UpdatedAt)
}

func sortOrder(sortBy, sortDir string) string {
	dir := "ASC"
	if sortDir == shared.SortDesc {
		dir = "DESC"
	}
	switch sortBy {
	case "item_code":
		return "item_code " + dir
	case "gst_rate":
		return "gst_rate " + dir
	case "created_at":
		return "created_at " + dir
	default:
		return "item_name " + dir
	}
}
