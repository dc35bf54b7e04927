package postgres

import (
	"context"
	"database/sql"
	"time"

	"bloqpoint-backend/internal/domain"
	"bloqpoint-backend/internal/repository"
)

type lockerRepository struct {
	db *sql.DB
}

func NewLockerRepository(db *sql.DB) repository.LockerRepository {
	return &lockerRepository{db: db}
}

const lockerColumns = `id, bloq_id, door_state, occupied, created_on, updated_on`

func scanLocker(row interface{ Scan(...any) error }, l *domain.Locker) error {
	return row.Scan(&l.ID, &l.BloqID, &l.DoorState, &l.Occupied, &l.CreatedOn, &l.UpdatedOn)
}

func (r *lockerRepository) Create(ctx context.Context, l *domain.Locker) error {
	query := `INSERT INTO lockers (id, bloq_id, door_state, occupied, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_on, updated_on`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, l.ID, l.BloqID, l.DoorState, l.Occupied, now, now).Scan(&l.CreatedOn, &l.UpdatedOn)
}

func (r *lockerRepository) GetByID(ctx context.Context, id string) (*domain.Locker, error) {
	l := &domain.Locker{}
	query := `SELECT ` + lockerColumns + ` FROM lockers WHERE id = $1`
	if err := scanLocker(r.db.QueryRowContext(ctx, query, id), l); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *lockerRepository) List(ctx context.Context) ([]domain.Locker, error) {
	return r.queryLockers(ctx, `SELECT `+lockerColumns+` FROM lockers ORDER BY created_on`)
}

func (r *lockerRepository) ListByBloq(ctx context.Context, bloqID string) ([]domain.Locker, error) {
	return r.queryLockers(ctx, `SELECT `+lockerColumns+` FROM lockers WHERE bloq_id = $1`, bloqID)
}

func (r *lockerRepository) ListAvailable(ctx context.Context, bloqID string) ([]domain.Locker, error) {
	return r.queryLockers(ctx, `SELECT `+lockerColumns+` FROM lockers WHERE bloq_id = $1 AND occupied = FALSE`, bloqID)
}

func (r *lockerRepository) queryLockers(ctx context.Context, query string, args ...any) ([]domain.Locker, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lockers := []domain.Locker{}
	for rows.Next() {
		var l domain.Locker
		if err := scanLocker(rows, &l); err != nil {
			return nil, err
		}
		lockers = append(lockers, l)
	}
	return lockers, rows.Err()
}

func (r *lockerRepository) UpdateDoorState(ctx context.Context, id string, state domain.DoorState) (bool, error) {
	query := `UPDATE lockers SET door_state = $1, updated_on = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, state, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Claim is the only write path that sets occupied. The compare-and-set in the
// WHERE clause guarantees that of any number of concurrent claims on a free
// locker exactly one observes a row change.
func (r *lockerRepository) Claim(ctx context.Context, id string) (bool, error) {
	query := `UPDATE lockers SET occupied = TRUE, updated_on = $1 WHERE id = $2 AND occupied = FALSE`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	// Zero rows means either the locker is occupied or it does not exist.
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM lockers WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, err
	}
	if !exists {
		return false, sql.ErrNoRows
	}
	return false, nil
}

func (r *lockerRepository) Release(ctx context.Context, id string) (bool, error) {
	query := `UPDATE lockers SET occupied = FALSE, updated_on = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *lockerRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lockers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
