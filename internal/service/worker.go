package service

import (
	"context"
	"errors"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/repository"
)

type workerService struct {
	workerRepo repository.WorkerRepository
}

func NewWorkerService(workerRepo repository.WorkerRepository) WorkerService {
	return &workerService{workerRepo: workerRepo}
}

func (s *workerService) AddWorker(ctx context.Context, worker *domain.Worker) error {
	if worker.FirstName == "" || worker.LastName == "" {
		return errors.New("worker first and last name are required")
	}
	worker.Active = true
	return s.workerRepo.Create(ctx, worker)
}

func (s *workerService) GetWorker(ctx context.Context, id string) (*domain.Worker, error) {
	return s.workerRepo.GetByID(ctx, id)
}

func (s *workerService) UpdateWorker(ctx context.Context, worker *domain.Worker) error {
	existing, err := s.workerRepo.GetByID(ctx, worker.ID)
	if err != nil {
		return err
	}
	// The balance is owned by the transaction trigger; a profile edit must
	// not overwrite it with a stale value.
	worker.CurrentBalance = existing.CurrentBalance
	worker.CreatedAt = existing.CreatedAt
	return s.workerRepo.Update(ctx, worker)
}

func (s *workerService) DeleteWorker(ctx context.Context, id string) error {
	return s.workerRepo.Delete(ctx, id)
}

func (s *workerService) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	return s.workerRepo.List(ctx)
}

func (s *workerService) ListWorkersByOperation(ctx context.Context, operationID string) ([]domain.Worker, error) {
	return s.workerRepo.ListByOperation(ctx, operationID)
}

func (s *workerService) SetWorkerActive(ctx context.Context, id string, active bool) error {
	return s.workerRepo.SetActive(ctx, id, active)
}
