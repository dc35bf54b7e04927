package service

import (
	"context"
	"database/sql"
	"errors"

	"bloqpoint-backend/internal/domain"
	"bloqpoint-backend/internal/repository"
)

type lockerService struct {
	lockerRepo repository.LockerRepository
	bloqRepo   repository.BloqRepository
}

func NewLockerService(lockerRepo repository.LockerRepository, bloqRepo repository.BloqRepository) LockerService {
	return &lockerService{
		lockerRepo: lockerRepo,
		bloqRepo:   bloqRepo,
	}
}

func (s *lockerService) CreateLocker(ctx context.Context, bloqID string) (*domain.Locker, error) {
	if bloqID == "" {
		return nil, &domain.InvalidFieldError{Field: "bloq_id", Reason: "must not be empty"}
	}
	if _, err := s.bloqRepo.GetByID(ctx, bloqID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "bloq", ID: bloqID}
		}
		return nil, err
	}

	locker := domain.NewLocker(bloqID)
	if err := s.lockerRepo.Create(ctx, locker); err != nil {
		return nil, err
	}
	return locker, nil
}

func (s *lockerService) GetLocker(ctx context.Context, id string) (*domain.Locker, error) {
	locker, err := s.lockerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "locker", ID: id}
		}
		return nil, err
	}
	return locker, nil
}

func (s *lockerService) ListLockers(ctx context.Context) ([]domain.Locker, error) {
	return s.lockerRepo.List(ctx)
}

func (s *lockerService) ListLockersByBloq(ctx context.Context, bloqID string) ([]domain.Locker, error) {
	return s.lockerRepo.ListByBloq(ctx, bloqID)
}

func (s *lockerService) ListAvailableLockers(ctx context.Context, bloqID string) ([]domain.Locker, error) {
	return s.lockerRepo.ListAvailable(ctx, bloqID)
}

// ToggleDoor flips the door state. Door state carries no invariant and is not
// coupled to occupancy, so a read followed by a write is acceptable here.
func (s *lockerService) ToggleDoor(ctx context.Context, id string) (*domain.Locker, error) {
	locker, err := s.GetLocker(ctx, id)
	if err != nil {
		return nil, err
	}

	locker.DoorState = locker.DoorState.Toggled()
	found, err := s.lockerRepo.UpdateDoorState(ctx, id, locker.DoorState)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.NotFoundError{Entity: "locker", ID: id}
	}
	return locker, nil
}

func (s *lockerService) DeleteLocker(ctx context.Context, id string) error {
	locker, err := s.GetLocker(ctx, id)
	if err != nil {
		return err
	}
	if locker.Occupied {
		return &domain.LockerOccupiedError{LockerID: id}
	}

	existed, err := s.lockerRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return &domain.NotFoundError{Entity: "locker", ID: id}
	}
	return nil
}

func (s *lockerService) ClaimLocker(ctx context.Context, id string) error {
	claimed, err := s.lockerRepo.Claim(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.NotFoundError{Entity: "locker", ID: id}
		}
		return err
	}
	if !claimed {
		return &domain.LockerOccupiedError{LockerID: id}
	}
	return nil
}

func (s *lockerService) ReleaseLocker(ctx context.Context, id string) error {
	found, err := s.lockerRepo.Release(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return &domain.NotFoundError{Entity: "locker", ID: id}
	}
	return nil
}
