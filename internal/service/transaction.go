package service

import (
	"context"
	"errors"
	"math"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/repository"
)

type transactionService struct {
	txRepo   repository.TransactionRepository
	typeRepo repository.TransactionTypeRepository
}

func NewTransactionService(
	txRepo repository.TransactionRepository,
	typeRepo repository.TransactionTypeRepository,
) TransactionService {
	return &transactionService{txRepo: txRepo, typeRepo: typeRepo}
}

func (s *transactionService) CreateTransaction(ctx context.Context, tx *domain.Transaction) (string, error) {
	if tx.TransactionTypeID == "" {
		return "", errors.New("transactionTypeId is required")
	}
	if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
		return "", errors.New("amount must be a finite number")
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return "", err
	}
	return tx.ID, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.txRepo.GetByID(ctx, id)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, tx *domain.Transaction) error {
	return s.txRepo.Update(ctx, tx)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	return s.txRepo.Delete(ctx, id)
}

func (s *transactionService) ListTransactionsByWorker(ctx context.Context, workerID string) ([]domain.Transaction, error) {
	return s.txRepo.ListByWorker(ctx, workerID)
}

func (s *transactionService) CreateTransactionType(ctx context.Context, tt *domain.TransactionType) error {
	if tt.Name == "" {
		return errors.New("transaction type name is required")
	}
	return s.typeRepo.Create(ctx, tt)
}

func (s *transactionService) GetTransactionType(ctx context.Context, id string) (*domain.TransactionType, error) {
	return s.typeRepo.GetByID(ctx, id)
}

func (s *transactionService) UpdateTransactionType(ctx context.Context, tt *domain.TransactionType) error {
	return s.typeRepo.Update(ctx, tt)
}

func (s *transactionService) DeleteTransactionType(ctx context.Context, id string) error {
	return s.typeRepo.Delete(ctx, id)
}

func (s *transactionService) ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error) {
	return s.typeRepo.List(ctx)
}
