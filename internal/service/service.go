package service

import (
	"context"

	"bloqpoint-backend/internal/domain"
)

type BloqService interface {
	CreateBloq(ctx context.Context, title, address string) (*domain.Bloq, error)
	GetBloq(ctx context.Context, id string) (*domain.Bloq, error)
	ListBloqs(ctx context.Context) ([]domain.Bloq, error)
	UpdateBloq(ctx context.Context, id, title, address string) (*domain.Bloq, error)
	DeleteBloq(ctx context.Context, id string) error
}

// LockerService is the occupancy registry. ClaimLocker and ReleaseLocker are
// the only operations that touch the occupancy flag.
type LockerService interface {
	CreateLocker(ctx context.Context, bloqID string) (*domain.Locker, error)
	GetLocker(ctx context.Context, id string) (*domain.Locker, error)
	ListLockers(ctx context.Context) ([]domain.Locker, error)
	ListLockersByBloq(ctx context.Context, bloqID string) ([]domain.Locker, error)
	ListAvailableLockers(ctx context.Context, bloqID string) ([]domain.Locker, error)
	ToggleDoor(ctx context.Context, id string) (*domain.Locker, error)
	DeleteLocker(ctx context.Context, id string) error
	// ClaimLocker atomically marks the locker occupied. It fails with
	// *domain.LockerOccupiedError when the locker is already bound to an
	// active rent and *domain.NotFoundError when it does not exist.
	ClaimLocker(ctx context.Context, id string) error
	// ReleaseLocker marks the locker unoccupied. It is idempotent.
	ReleaseLocker(ctx context.Context, id string) error
}

// RentService drives the rent lifecycle and coordinates locker claims and
// releases through the LockerService.
type RentService interface {
	CreateRent(ctx context.Context, lockerID string, weight float64, size string) (*domain.Rent, error)
	GetRent(ctx context.Context, id string) (*domain.Rent, error)
	ListRents(ctx context.Context) ([]domain.Rent, error)
	ListActiveRents(ctx context.Context) ([]domain.Rent, error)
	GetRentByLocker(ctx context.Context, lockerID string) (*domain.Rent, error)
	UpdateRentStatus(ctx context.Context, id, status string) (*domain.Rent, error)
}
