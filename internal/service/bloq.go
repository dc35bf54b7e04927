package service

import (
	"context"
	"database/sql"
	"errors"

	"bloqpoint-backend/internal/domain"
	"bloqpoint-backend/internal/repository"
)

type bloqService struct {
	bloqRepo repository.BloqRepository
}

func NewBloqService(bloqRepo repository.BloqRepository) BloqService {
	return &bloqService{bloqRepo: bloqRepo}
}

func (s *bloqService) CreateBloq(ctx context.Context, title, address string) (*domain.Bloq, error) {
	if title == "" {
		return nil, &domain.InvalidFieldError{Field: "title", Reason: "must not be empty"}
	}
	if address == "" {
		return nil, &domain.InvalidFieldError{Field: "address", Reason: "must not be empty"}
	}

	bloq := domain.NewBloq(title, address)
	if err := s.bloqRepo.Create(ctx, bloq); err != nil {
		return nil, err
	}
	return bloq, nil
}

func (s *bloqService) GetBloq(ctx context.Context, id string) (*domain.Bloq, error) {
	bloq, err := s.bloqRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "bloq", ID: id}
		}
		return nil, err
	}
	return bloq, nil
}

func (s *bloqService) ListBloqs(ctx context.Context) ([]domain.Bloq, error) {
	return s.bloqRepo.List(ctx)
}

func (s *bloqService) UpdateBloq(ctx context.Context, id, title, address string) (*domain.Bloq, error) {
	bloq, err := s.GetBloq(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		bloq.Title = title
	}
	if address != "" {
		bloq.Address = address
	}
	if err := s.bloqRepo.Update(ctx, bloq); err != nil {
		return nil, err
	}
	return bloq, nil
}

func (s *bloqService) DeleteBloq(ctx context.Context, id string) error {
	existed, err := s.bloqRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return &domain.NotFoundError{Entity: "bloq", ID: id}
	}
	return nil
}
