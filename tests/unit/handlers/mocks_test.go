package handlers

import (
	"context"

	"bloqpoint-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBloqService
type MockBloqService struct {
	mock.Mock
}

func (m *MockBloqService) CreateBloq(ctx context.Context, title, address string) (*domain.Bloq, error) {
	args := m.Called(ctx, title, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bloq), args.Error(1)
}
func (m *MockBloqService) GetBloq(ctx context.Context, id string) (*domain.Bloq, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bloq), args.Error(1)
}
func (m *MockBloqService) ListBloqs(ctx context.Context) ([]domain.Bloq, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Bloq), args.Error(1)
}
func (m *MockBloqService) UpdateBloq(ctx context.Context, id, title, address string) (*domain.Bloq, error) {
	args := m.Called(ctx, id, title, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bloq), args.Error(1)
}
func (m *MockBloqService) DeleteBloq(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLockerService
type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) CreateLocker(ctx context.Context, bloqID string) (*domain.Locker, error) {
	args := m.Called(ctx, bloqID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Locker), args.Error(1)
}
func (m *MockLockerService) GetLocker(ctx context.Context, id string) (*domain.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Locker), args.Error(1)
}
func (m *MockLockerService) ListLockers(ctx context.Context) ([]domain.Locker, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Locker), args.Error(1)
}
func (m *MockLockerService) ListLockersByBloq(ctx context.Context, bloqID string) ([]domain.Locker, error) {
	args := m.Called(ctx, bloqID)
	return args.Get(0).([]domain.Locker), args.Error(1)
}
func (m *MockLockerService) ListAvailableLockers(ctx context.Context, bloqID string) ([]domain.Locker, error) {
	args := m.Called(ctx, bloqID)
	return args.Get(0).([]domain.Locker), args.Error(1)
}
func (m *MockLockerService) ToggleDoor(ctx context.Context, id string) (*domain.Locker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Locker), args.Error(1)
}
func (m *MockLockerService) DeleteLocker(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockLockerService) ClaimLocker(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockLockerService) ReleaseLocker(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentService
type MockRentService struct {
	mock.Mock
}

func (m *MockRentService) CreateRent(ctx context.Context, lockerID string, weight float64, size string) (*domain.Rent, error) {
	args := m.Called(ctx, lockerID, weight, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentService) GetRent(ctx context.Context, id string) (*domain.Rent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentService) ListRents(ctx context.Context) ([]domain.Rent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentService) ListActiveRents(ctx context.Context) ([]domain.Rent, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rent), args.Error(1)
}
func (m *MockRentService) GetRentByLocker(ctx context.Context, lockerID string) (*domain.Rent, error) {
	args := m.Called(ctx, lockerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
func (m *MockRentService) UpdateRentStatus(ctx context.Context, id, status string) (*domain.Rent, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rent), args.Error(1)
}
