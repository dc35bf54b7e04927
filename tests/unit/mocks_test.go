package unit

import (
	"context"
	"time"

	"bloqpoint-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBloqRepo
type MockBloqRepo struct {
	mock.Mock
}

func (m *MockBloqRepo) Create(ctx context.Context, bloq *domain.Bloq) error {
	args := m.Called(ctx, bloq)
	return args.Error(0)
}
func (m *MockBloqRepo) GetByID(ctx context.Context, id string) (*domain.Bloq, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bloq), args.Error(1)
}
func (m *MockBloqRepo) List(ctx context.Context) ([]domain.Bloq, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Bloq), args.Error(1)
}
func (m *MockBloqRepo) Update(ctx context.Context, bloq *domain.Bloq) error {
	args := m.Called(ctx, bloq)
	return args.Error(0)
}
func (m *MockBloqRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockLockerRepo
type MockLockerRepo struct {
	mock.Mock
}

func (m *MockLockerRepo) Create(ctx context.Context, locker *domain.Locker) error {
	args := m.Called(ctx, locker)
	return args.Error(0)
}
func (m *MockLockerRepo) GetByID(ctx context.Context, id string) (*domain.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Locker), args.Error(1)
}
func (m *MockLockerRepo) List(ctx context.Context) ([]domain.Locker, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Locker), args.Error(1)
}
func (m *MockLockerRepo) ListByBloq(ctx context.Context, bloqID string) ([]domain.Locker, error) {
	args := m.Called(ctx, bloqID)
	return args.Get(0).([]domain.Locker), args.Error(1)
}
func (m *MockLockerRepo) ListAvailable(ctx context.Context, bloqID string) ([]domain.Locker, error) {
	args := m.Called(ctx, bloqID)
	return args.Get(0).([]domain.Locker), args.Error(1)
}
func (m *MockLockerRepo) UpdateDoorState(ctx context.Context, id string, state domain.DoorState) (bool, error) {
	args := m.Called(ctx, id, state)
	return args.Bool(0), args.Error(1)
}
func (m *MockLockerRepo) Claim(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockLockerRepo) Release(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockLockerRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockRentRepo
type MockRentRepo struct {
	mock.Mock
}

func (m *MockRentRepo) Create(ctx context.Context, rent *domain.Rent) error {
	args := m.Called(ctx, rent)
	return args.Error(0)
}
func (m *MockRentRepo) GetByID(ctx context.Context, id string) (*domain.Rent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentRepo) List(ctx context.Context) ([]domain.Rent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentRepo) ListActive(ctx context.Context) ([]domain.Rent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentRepo) GetByLockerID(ctx context.Context, lockerID string) (*domain.Rent, error) {
	args := m.Called(ctx, lockerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentRepo) UpdateStatus(ctx context.Context, id string, status domain.RentStatus) (time.Time, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(time.Time), args.Error(1)
}
func (m *MockRentRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockLockerRegistry mocks the locker service consumed by the rent service.
type MockLockerRegistry struct {
	mock.Mock
}

func (m *MockLockerRegistry) CreateLocker(ctx context.Context, bloqID string) (*domain.Locker, error) {
	args := m.Called(ctx, bloqID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Locker), args.Error(1)
}
func (m *MockLockerRegistry) GetLocker(ctx context.Context, id string) (*domain.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Locker), args.Error(1)
}
func (m *MockLockerRegistry) ListLockers(ctx context.Context) ([]domain.Locker, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Locker), args.Error(1)
}
func (m *MockLockerRegistry) ListLockersByBloq(ctx context.Context, bloqID string) ([]domain.Locker, error) {
	args := m.Called(ctx, bloqID)
	return args.Get(0).([]domain.Locker), args.Error(1)
}
func (m *MockLockerRegistry) ListAvailableLockers(ctx context.Context, bloqID string) ([]domain.Locker, error) {
	args := m.Called(ctx, bloqID)
	return args.Get(0).([]domain.Locker), args.Error(1)
}
func (m *MockLockerRegistry) ToggleDoor(ctx context.Context, id string) (*domain.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Locker), args.Error(1)
}
func (m *MockLockerRegistry) DeleteLocker(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockLockerRegistry) ClaimLocker(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockLockerRegistry) ReleaseLocker(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
