package service

import (
	"context"
	"errors"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/repository"
)

type workerTypeService struct {
	wtRepo repository.WorkerTypeRepository
}

func NewWorkerTypeService(wtRepo repository.WorkerTypeRepository) WorkerTypeService {
	return &workerTypeService{wtRepo: wtRepo}
}

func (s *workerTypeService) CreateWorkerType(ctx context.Context, wt *domain.WorkerType) error {
	if wt.Name == "" {
		return errors.New("worker type name is required")
	}
	return s.wtRepo.Create(ctx, wt)
}

func (s *workerTypeService) GetWorkerType(ctx context.Context, id string) (*domain.WorkerType, error) {
	return s.wtRepo.GetByID(ctx, id)
}

func (s *workerTypeService) UpdateWorkerType(ctx context.Context, wt *domain.WorkerType) error {
	return s.wtRepo.Update(ctx, wt)
}

func (s *workerTypeService) DeleteWorkerType(ctx context.Context, id string) error {
	return s.wtRepo.Delete(ctx, id)
}

func (s *workerTypeService) ListWorkerTypes(ctx context.Context) ([]domain.WorkerType, error) {
	return s.wtRepo.List(ctx)
}
