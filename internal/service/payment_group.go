package service

import (
	"context"
	"errors"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/repository"
)

type paymentGroupService struct {
	pgRepo     repository.PaymentGroupRepository
	workerRepo repository.WorkerRepository
}

func NewPaymentGroupService(
	pgRepo repository.PaymentGroupRepository,
	workerRepo repository.WorkerRepository,
) PaymentGroupService {
	return &paymentGroupService{pgRepo: pgRepo, workerRepo: workerRepo}
}

func (s *paymentGroupService) CreatePaymentGroup(ctx context.Context, pg *domain.PaymentGroup) error {
	if pg.Description == "" {
		return errors.New("payment group description is required")
	}
	for _, workerID := range pg.WorkerIDs {
		if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
			return err
		}
	}
	return s.pgRepo.Create(ctx, pg)
}

func (s *paymentGroupService) GetPaymentGroup(ctx context.Context, id string) (*domain.PaymentGroup, error) {
	return s.pgRepo.GetByID(ctx, id)
}

func (s *paymentGroupService) UpdatePaymentGroup(ctx context.Context, pg *domain.PaymentGroup) error {
	existing, err := s.pgRepo.GetByID(ctx, pg.ID)
	if err != nil {
		return err
	}
	pg.CreatedAt = existing.CreatedAt
	return s.pgRepo.Update(ctx, pg)
}

func (s *paymentGroupService) DeletePaymentGroup(ctx context.Context, id string) error {
	return s.pgRepo.Delete(ctx, id)
}

func (s *paymentGroupService) ListPaymentGroups(ctx context.Context) ([]domain.PaymentGroup, error) {
	return s.pgRepo.List(ctx)
}
