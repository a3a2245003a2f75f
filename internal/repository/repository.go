package repository

import (
	"context"
	"time"

	"farmforce-backend/internal/domain"
)

type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	Update(ctx context.Context, worker *domain.Worker) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Worker, error)
	ListByOperation(ctx context.Context, operationID string) ([]domain.Worker, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id string) error
	ListByWorker(ctx context.Context, workerID string) ([]domain.Transaction, error)
	ListUnprocessedBefore(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error)

	// SetAmount rewrites only the amount field of an existing transaction.
	SetAmount(ctx context.Context, id string, amount float64) error

	// ApplyDelta adds delta to the currentBalance of every listed worker and
	// marks the transaction processed, all in one storage transaction. Each
	// balance mutation must use the store's increment-by-delta primitive.
	// Returns domain.ErrAlreadyProcessed if the marker is already set.
	ApplyDelta(ctx context.Context, txID string, workerIDs []string, delta float64) error
}

type TransactionTypeRepository interface {
	Create(ctx context.Context, tt *domain.TransactionType) error
	GetByID(ctx context.Context, id string) (*domain.TransactionType, error)
	Update(ctx context.Context, tt *domain.TransactionType) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.TransactionType, error)
}

type OperationRepository interface {
	Create(ctx context.Context, op *domain.Operation) error
	GetByID(ctx context.Context, id string) (*domain.Operation, error)
	Update(ctx context.Context, op *domain.Operation) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Operation, error)
}

type WorkerTypeRepository interface {
	Create(ctx context.Context, wt *domain.WorkerType) error
	GetByID(ctx context.Context, id string) (*domain.WorkerType, error)
	Update(ctx context.Context, wt *domain.WorkerType) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.WorkerType, error)
}

type PaymentGroupRepository interface {
	Create(ctx context.Context, pg *domain.PaymentGroup) error
	GetByID(ctx context.Context, id string) (*domain.PaymentGroup, error)
	Update(ctx context.Context, pg *domain.PaymentGroup) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.PaymentGroup, error)
}

type FarmRepository interface {
	Create(ctx context.Context, farm *domain.Farm) error
	GetByID(ctx context.Context, id string) (*domain.Farm, error)
	Update(ctx context.Context, farm *domain.Farm) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Farm, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	Update(ctx context.Context, report *domain.Report) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Report, error)
}
