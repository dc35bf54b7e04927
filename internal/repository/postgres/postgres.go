package postgres

import (
	"database/sql"

	"bloqpoint-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BloqRepository
	repository.LockerRepository
	repository.RentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		BloqRepository:   NewBloqRepository(db),
		LockerRepository: NewLockerRepository(db),
		RentRepository:   NewRentRepository(db),
	}
}
