package postgres

import (
	"context"
	"database/sql"
	"time"

	"bloqpoint-backend/internal/domain"
	"bloqpoint-backend/internal/repository"
)

type bloqRepository struct {
	db *sql.DB
}

func NewBloqRepository(db *sql.DB) repository.BloqRepository {
	return &bloqRepository{db: db}
}

func (r *bloqRepository) Create(ctx context.Context, b *domain.Bloq) error {
	query := `INSERT INTO bloqs (id, title, address, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING created_on, updated_on`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, b.ID, b.Title, b.Address, now, now).Scan(&b.CreatedOn, &b.UpdatedOn)
}

func (r *bloqRepository) GetByID(ctx context.Context, id string) (*domain.Bloq, error) {
	b := &domain.Bloq{}
	query := `SELECT id, title, address, created_on, updated_on FROM bloqs WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Address, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bloqRepository) List(ctx context.Context) ([]domain.Bloq, error) {
	query := `SELECT id, title, address, created_on, updated_on FROM bloqs ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bloqs := []domain.Bloq{}
	for rows.Next() {
		var b domain.Bloq
		if err := rows.Scan(&b.ID, &b.Title, &b.Address, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bloqs = append(bloqs, b)
	}
	return bloqs, rows.Err()
}

func (r *bloqRepository) Update(ctx context.Context, b *domain.Bloq) error {
	query := `UPDATE bloqs SET title=$1, address=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, b.Title, b.Address, time.Now(), b.ID)
	return err
}

func (r *bloqRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bloqs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
