package postgres

import (
	"context"
	"database/sql"
	"time"

	"bloqpoint-backend/internal/domain"
	"bloqpoint-backend/internal/repository"
)

type rentRepository struct {
	db *sql.DB
}

func NewRentRepository(db *sql.DB) repository.RentRepository {
	return &rentRepository{db: db}
}

const rentColumns = `id, locker_id, weight, size, status, created_on, updated_on`

func scanRent(row interface{ Scan(...any) error }, rt *domain.Rent) error {
	return row.Scan(&rt.ID, &rt.LockerID, &rt.Weight, &rt.Size, &rt.Status, &rt.CreatedOn, &rt.UpdatedOn)
}

func (r *rentRepository) Create(ctx context.Context, rt *domain.Rent) error {
	query := `INSERT INTO rents (id, locker_id, weight, size, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_on, updated_on`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, rt.ID, rt.LockerID, rt.Weight, rt.Size, rt.Status, now, now).Scan(&rt.CreatedOn, &rt.UpdatedOn)
}

func (r *rentRepository) GetByID(ctx context.Context, id string) (*domain.Rent, error) {
	rt := &domain.Rent{}
	query := `SELECT ` + rentColumns + ` FROM rents WHERE id = $1`
	if err := scanRent(r.db.QueryRowContext(ctx, query, id), rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentRepository) List(ctx context.Context) ([]domain.Rent, error) {
	return r.queryRents(ctx, `SELECT `+rentColumns+` FROM rents ORDER BY created_on`)
}

func (r *rentRepository) ListActive(ctx context.Context) ([]domain.Rent, error) {
	return r.queryRents(ctx, `SELECT `+rentColumns+` FROM rents WHERE status <> $1`, domain.RentStatusDelivered)
}

// GetByLockerID prefers the active rent; with none active it falls back to
// the latest delivered one.
func (r *rentRepository) GetByLockerID(ctx context.Context, lockerID string) (*domain.Rent, error) {
	rt := &domain.Rent{}
	query := `SELECT ` + rentColumns + ` FROM rents WHERE locker_id = $1
	          ORDER BY (status <> $2) DESC, created_on DESC LIMIT 1`
	if err := scanRent(r.db.QueryRowContext(ctx, query, lockerID, domain.RentStatusDelivered), rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentRepository) queryRents(ctx context.Context, query string, args ...any) ([]domain.Rent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rents := []domain.Rent{}
	for rows.Next() {
		var rt domain.Rent
		if err := scanRent(rows, &rt); err != nil {
			return nil, err
		}
		rents = append(rents, rt)
	}
	return rents, rows.Err()
}

func (r *rentRepository) UpdateStatus(ctx context.Context, id string, status domain.RentStatus) (time.Time, error) {
	query := `UPDATE rents SET status = $1, updated_on = $2 WHERE id = $3 RETURNING updated_on`
	var updatedOn time.Time
	if err := r.db.QueryRowContext(ctx, query, status, time.Now(), id).Scan(&updatedOn); err != nil {
		return time.Time{}, err
	}
	return updatedOn, nil
}

func (r *rentRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rents WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
