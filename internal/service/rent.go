package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bloqpoint-backend/internal/domain"
	"bloqpoint-backend/internal/logger"
	"bloqpoint-backend/internal/repository"
)

type rentService struct {
	rentRepo repository.RentRepository
	lockers  LockerService
}

func NewRentService(rentRepo repository.RentRepository, lockers LockerService) RentService {
	return &rentService{
		rentRepo: rentRepo,
		lockers:  lockers,
	}
}

// CreateRent claims the target locker before persisting anything, so two
// concurrent creates against the same locker can never both succeed. If the
// insert fails after the claim won, the claim is compensated with a release;
// a failed compensation is reported alongside the insert failure instead of
// being masked.
func (s *rentService) CreateRent(ctx context.Context, lockerID string, weight float64, size string) (*domain.Rent, error) {
	if lockerID == "" {
		return nil, &domain.InvalidFieldError{Field: "locker_id", Reason: "must not be empty"}
	}
	if weight < 0 {
		return nil, &domain.InvalidFieldError{Field: "weight", Reason: "must not be negative"}
	}
	if !domain.ValidRentSize(size) {
		return nil, &domain.InvalidFieldError{Field: "size", Reason: fmt.Sprintf("unknown size %q", size)}
	}

	if err := s.lockers.ClaimLocker(ctx, lockerID); err != nil {
		return nil, err
	}

	rent := domain.NewRent(lockerID, weight, domain.RentSize(size))
	if err := s.rentRepo.Create(ctx, rent); err != nil {
		if relErr := s.lockers.ReleaseLocker(ctx, lockerID); relErr != nil {
			return nil, errors.Join(
				err,
				fmt.Errorf("compensating release of locker %s failed: %w", lockerID, relErr),
			)
		}
		return nil, err
	}
	return rent, nil
}

func (s *rentService) GetRent(ctx context.Context, id string) (*domain.Rent, error) {
	rent, err := s.rentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "rent", ID: id}
		}
		return nil, err
	}
	return rent, nil
}

func (s *rentService) ListRents(ctx context.Context) ([]domain.Rent, error) {
	return s.rentRepo.List(ctx)
}

func (s *rentService) ListActiveRents(ctx context.Context) ([]domain.Rent, error) {
	return s.rentRepo.ListActive(ctx)
}

func (s *rentService) GetRentByLocker(ctx context.Context, lockerID string) (*domain.Rent, error) {
	rent, err := s.rentRepo.GetByLockerID(ctx, lockerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "rent for locker", ID: lockerID}
		}
		return nil, err
	}
	return rent, nil
}

// UpdateRentStatus advances a rent one step along
// CREATED -> WAITING_DROPOFF -> WAITING_PICKUP -> DELIVERED. On the terminal
// transition the locker is released before the status is persisted, so the
// worst state observable mid-operation is a momentarily free locker with a
// not-yet-delivered rent, never a stuck-occupied locker.
func (s *rentService) UpdateRentStatus(ctx context.Context, id, status string) (*domain.Rent, error) {
	if !domain.ValidRentStatus(status) {
		return nil, &domain.InvalidStatusError{Value: status}
	}
	next := domain.RentStatus(status)

	rent, err := s.GetRent(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rent.Status.CanTransitionTo(next) {
		return nil, &domain.InvalidTransitionError{From: rent.Status, To: next}
	}

	if next == domain.RentStatusDelivered {
		if err := s.lockers.ReleaseLocker(ctx, rent.LockerID); err != nil {
			var notFound *domain.NotFoundError
			if errors.As(err, &notFound) {
				// The locker was deleted out from under the rent. There is
				// nothing left to free, so the delivery itself still proceeds.
				logger.Warn("released locker no longer exists", "rent_id", id, "locker_id", rent.LockerID)
			} else {
				return nil, err
			}
		}
	}

	updatedOn, err := s.rentRepo.UpdateStatus(ctx, rent.ID, next)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "rent", ID: id}
		}
		return nil, err
	}
	rent.Status = next
	rent.UpdatedOn = updatedOn
	return rent, nil
}
