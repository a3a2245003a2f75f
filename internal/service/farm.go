package service

import (
	"context"
	"errors"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/repository"
)

type farmService struct {
	farmRepo repository.FarmRepository
}

func NewFarmService(farmRepo repository.FarmRepository) FarmService {
	return &farmService{farmRepo: farmRepo}
}

func (s *farmService) CreateFarm(ctx context.Context, farm *domain.Farm) error {
	if farm.Name == "" {
		return errors.New("farm name is required")
	}
	return s.farmRepo.Create(ctx, farm)
}

func (s *farmService) GetFarm(ctx context.Context, id string) (*domain.Farm, error) {
	return s.farmRepo.GetByID(ctx, id)
}

func (s *farmService) UpdateFarm(ctx context.Context, farm *domain.Farm) error {
	return s.farmRepo.Update(ctx, farm)
}

func (s *farmService) DeleteFarm(ctx context.Context, id string) error {
	return s.farmRepo.Delete(ctx, id)
}

func (s *farmService) ListFarms(ctx context.Context) ([]domain.Farm, error) {
	return s.farmRepo.List(ctx)
}
