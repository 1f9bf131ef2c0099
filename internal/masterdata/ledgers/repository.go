package ledgers

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
	List(ctx context.Context, filters shared.ListFilters) ([]Ledger, error)
	Get(ctx context.Context, id int64) (Ledger, error)
	Create(ctx context.Context, ledger Ledger) (Ledger, error)
	Update(ctx context.Context, id int64, ledger Ledger) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const ledgerColumns = `id, party_code, party_name, party_type, address, state, district_code, district_name,
	postal_code, gstin, pan, contact_person, mobile_number, email, ledger_mapping, active_status, created_at, updated_at`

func (r *repository) List(ctx context.Context, filters shared.ListFilters) ([]Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE 1=1`
	args := []interface{}{}
	argCount := 0

	if filters.Search != "" {
		argCount++
		query += ` AND (party_name ILIKE $` + strconv.Itoa(argCount) + ` OR party_code ILIKE $` + strconv.Itoa(argCount) + `)`
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

	query += ` ORDER BY party_name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ledgers := []Ledger{}
	for rows.Next() {
		var l Ledger
		if err := scanLedger(rows, &l); err != nil {
			return nil, err
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE id = $1`
	var l Ledger
	err := scanLedger(r.db.QueryRow(ctx, query, id), &l)
	if errors.Is(err, pgx.ErrNoRows) {
		return Ledger{}, shared.ErrNotFound
	}
	return l, err
}

func (r *repository) Create(ctx context.Context, l Ledger) (Ledger, error) {
	query := `INSERT INTO ledgers (party_code, party_name, party_type, address, state, district_code, district_name,
		postal_code, gstin, pan, contact_person, mobile_number, email, ledger_mapping, active_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) RETURNING id`
	now := time.Now()
	err := r.db.QueryRow(ctx, query,
		l.PartyCode, l.PartyName, l.PartyType, l.Address, l.State, l.DistrictCode, l.DistrictName,
		l.PostalCode, l.GSTIN, l.PAN, l.ContactPerson, l.MobileNumber, l.Email, l.LedgerMapping,
		l.ActiveStatus, now, now,
	).Scan(&l.ID)
	if shared.DuplicateKey(err) {
		return Ledger{}, shared.ErrDuplicate
	}
	if err != nil {
		return Ledger{}, err
	}
	l.CreatedAt = now
	l.UpdatedAt = now
	return l, nil
}

func (r *repository) Update(ctx context.Context, id int64, l Ledger) error {
	query := `UPDATE ledgers SET party_code = $1, party_name = $2, party_type = $3, address = $4, state = $5,
		district_code = $6, district_name = $7, postal_code = $8, gstin = $9, pan = $10, contact_person = $11,
		mobile_number = $12, email = $13, ledger_mapping = $14, active_status = $15, updated_at = $16 WHERE id = $17`
	tag, err := r.db.Exec(ctx, query,
		l.PartyCode, l.PartyName, l.PartyType, l.Address, l.State, l.DistrictCode, l.DistrictName,
		l.PostalCode, l.GSTIN, l.PAN, l.ContactPerson, l.MobileNumber, l.Email, l.LedgerMapping,
		l.ActiveStatus, time.Now(), id,
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
	tag, err := r.db.Exec(ctx, `DELETE FROM ledgers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func scanLedger(row pgx.Row, l *Ledger) error {
	return row.Scan(&l.ID, &l.PartyCode, &l.PartyName, &l.PartyType, &l.Address, &l.State,
		&l.DistrictCode, &l.DistrictName, &l.PostalCode, &l.GSTIN, &l.PAN, &l.ContactPerson,
		&l.MobileNumber, &l.Email, &l.LedgerMapping, &l.ActiveStatus, &l.CreatedAt, &l.UpdatedAt)
}
