package districts

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
	List(ctx context.Context, filters shared.ListFilters) ([]District, error)
	Get(ctx context.Context, id int64) (District, error)
	Create(ctx context.Context, district District) (District, error)
	Update(ctx context.Context, id int64, district District) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const districtColumns = `id, district_name, district_code, state, postal_code, zone_region, active_status, remarks, created_at, updated_at`

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]District, error) {
	query := `SELECT ` + districtColumns + ` FROM districts WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		query += ` AND (district_name ILIKE $` + strconv.Itoa(argCount) + ` OR district_code ILIKE $` + strconv.Itoa(argCount) + `)`
		args = append(args, "%"+filters.Search+"%")
	}
	if filters.State != "" {
		argCount++
		query += ` AND state = $` + strconv.Itoa(argCount)
		args = append(args, filters.State)
	}
	if filters.Status != "" {
		argCount++
		query += ` AND active_status = $` + strconv.Itoa(argCount)
		args = append(args, filters.Status)
	}

	query += ` ORDER BY district_name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	districts := []District{}
	for rows.Next() {
		var d District
		if err := scanDistrict(rows, &d); err != nil {
			return nil, err
		}
		districts = append(districts, d)
	}
	return districts, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (District, error) {
	query := `SELECT ` + districtColumns + ` FROM districts WHERE id = $1`
	var d District
	err := scanDistrict(r.db.QueryRow(ctx, query, id), &d)
	if errors.Is(err, pgx.ErrNoRows) {
		return District{}, shared.ErrNotFound
	}
	return d, err
}

func (r *repository) Create(ctx context.Context, d District) (District, error) {
	query := `INSERT INTO districts (district_name, district_code, state, postal_code, zone_region, active_status, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		d.DistrictName, d.DistrictCode, d.State, d.PostalCode, d.ZoneRegion,
		d.ActiveStatus, d.Remarks, now, now,
	).Scan(&d.ID)
	if shared.DuplicateKey(err) {
		return District{}, shared.ErrDuplicate
	}
	if err != nil {
		return District{}, err
	}
	d.CreatedAt = now
	d.UpdatedAt = now
	return d, nil
}

func (r *repository) Update(ctx context.Context, id int64, d District) error {
	query := `UPDATE districts SET district_name = $1, district_code = $2, state = $3, postal_code = $4,
		zone_region = $5, active_status = $6, remarks = $7, updated_at = $8 WHERE id = $9`
	tag, err := r.db.Exec(ctx, query,
		d.DistrictName, d.DistrictCode, d.State, d.PostalCode, d.ZoneRegion,
		d.ActiveStatus, d.Remarks, time.Now(), id,
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
	tag, err := r.db.Exec(ctx, `DELETE FROM districts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanDistrict(row pgx.Row, d *District) error {
	return row.Scan(&d.ID, &d.DistrictName, &d.DistrictCode, &d.State, &d.PostalCode,
		&d.ZoneRegion, &d.ActiveStatus, &d.Remarks, &d.CreatedAt, &d.UpdatedAt)
}
