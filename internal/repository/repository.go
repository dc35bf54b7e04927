package repository

import (
	"context"
	"time"

	"bloqpoint-backend/internal/domain"
)

type BloqRepository interface {
	Create(ctx context.Context, bloq *domain.Bloq) error
	GetByID(ctx context.Context, id string) (*domain.Bloq, error)
	List(ctx context.Context) ([]domain.Bloq, error)
	Update(ctx context.Context, bloq *domain.Bloq) error
	// Delete removes the bloq and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}

type LockerRepository interface {
	Create(ctx context.Context, locker *domain.Locker) error
	GetByID(ctx context.Context, id string) (*domain.Locker, error)
	List(ctx context.Context) ([]domain.Locker, error)
	ListByBloq(ctx context.Context, bloqID string) ([]domain.Locker, error)
	ListAvailable(ctx context.Context, bloqID string) ([]domain.Locker, error)
	// UpdateDoorState sets the door state and reports whether the locker exists.
	UpdateDoorState(ctx context.Context, id string, state domain.DoorState) (bool, error)
	// Claim atomically flips occupied from false to true as a single
	// conditional update. It returns (true, nil) when the claim won,
	// (false, nil) when the locker is already occupied, and
	// (false, sql.ErrNoRows) when the locker does not exist.
	Claim(ctx context.Context, id string) (bool, error)
	// Release unconditionally clears occupied and reports whether the locker
	// exists. Releasing an unoccupied locker is a no-op, not an error.
	Release(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type RentRepository interface {
	Create(ctx context.Context, rent *domain.Rent) error
	GetByID(ctx context.Context, id string) (*domain.Rent, error)
	List(ctx context.Context) ([]domain.Rent, error)
	ListActive(ctx context.Context) ([]domain.Rent, error)
	// GetByLockerID returns the active rent for the locker, or the most
	// recently created one when none is active.
	GetByLockerID(ctx context.Context, lockerID string) (*domain.Rent, error)
	// UpdateStatus writes the new status and returns the updated_on timestamp
	// the row now carries.
	UpdateStatus(ctx context.Context, id string, status domain.RentStatus) (time.Time, error)
	Delete(ctx context.Context, id string) (bool, error)
}
