package service

import (
	"context"
	"errors"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/repository"
)

type operationService struct {
	opRepo repository.OperationRepository
}

func NewOperationService(opRepo repository.OperationRepository) OperationService {
	return &operationService{opRepo: opRepo}
}

func (s *operationService) CreateOperation(ctx context.Context, op *domain.Operation) error {
	if op.Name == "" {
		return errors.New("operation name is required")
	}
	return s.opRepo.Create(ctx, op)
}

func (s *operationService) GetOperation(ctx context.Context, id string) (*domain.Operation, error) {
	return s.opRepo.GetByID(ctx, id)
}

func (s *operationService) UpdateOperation(ctx context.Context, op *domain.Operation) error {
	return s.opRepo.Update(ctx, op)
}

func (s *operationService) DeleteOperation(ctx context.Context, id string) error {
	return s.opRepo.Delete(ctx, id)
}

func (s *operationService) ListOperations(ctx context.Context) ([]domain.Operation, error) {
	return s.opRepo.List(ctx)
}
