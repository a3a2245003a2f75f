package service

import (
	"context"

	"farmforce-backend/internal/domain"
)

type WorkerService interface {
	AddWorker(ctx context.Context, worker *domain.Worker) error
	GetWorker(ctx context.Context, id string) (*domain.Worker, error)
	UpdateWorker(ctx context.Context, worker *domain.Worker) error
	DeleteWorker(ctx context.Context, id string) error
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
	ListWorkersByOperation(ctx context.Context, operationID string) ([]domain.Worker, error)
	SetWorkerActive(ctx context.Context, id string, active bool) error
}

type TransactionService interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (string, error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *domain.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactionsByWorker(ctx context.Context, workerID string) ([]domain.Transaction, error)

	// Transaction types (lookup records classifying transactions)
	CreateTransactionType(ctx context.Context, tt *domain.TransactionType) error
	GetTransactionType(ctx context.Context, id string) (*domain.TransactionType, error)
	UpdateTransactionType(ctx context.Context, tt *domain.TransactionType) error
	DeleteTransactionType(ctx context.Context, id string) error
	ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error)
}

type OperationService interface {
	CreateOperation(ctx context.Context, op *domain.Operation) error
	GetOperation(ctx context.Context, id string) (*domain.Operation, error)
	UpdateOperation(ctx context.Context, op *domain.Operation) error
	DeleteOperation(ctx context.Context, id string) error
	ListOperations(ctx context.Context) ([]domain.Operation, error)
}

type WorkerTypeService interface {
	CreateWorkerType(ctx context.Context, wt *domain.WorkerType) error
	GetWorkerType(ctx context.Context, id string) (*domain.WorkerType, error)
	UpdateWorkerType(ctx context.Context, wt *domain.WorkerType) error
	DeleteWorkerType(ctx context.Context, id string) error
	ListWorkerTypes(ctx context.Context) ([]domain.WorkerType, error)
}

type PaymentGroupService interface {
	CreatePaymentGroup(ctx context.Context, pg *domain.PaymentGroup) error
	GetPaymentGroup(ctx context.Context, id string) (*domain.PaymentGroup, error)
	UpdatePaymentGroup(ctx context.Context, pg *domain.PaymentGroup) error
	DeletePaymentGroup(ctx context.Context, id string) error
	ListPaymentGroups(ctx context.Context) ([]domain.PaymentGroup, error)
}

type FarmService interface {
	CreateFarm(ctx context.Context, farm *domain.Farm) error
	GetFarm(ctx context.Context, id string) (*domain.Farm, error)
	UpdateFarm(ctx context.Context, farm *domain.Farm) error
	DeleteFarm(ctx context.Context, id string) error
	ListFarms(ctx context.Context) ([]domain.Farm, error)
}

type ReportService interface {
	CreateReport(ctx context.Context, report *domain.Report) error
	GetReport(ctx context.Context, id string) (*domain.Report, error)
	UpdateReport(ctx context.Context, report *domain.Report) error
	DeleteReport(ctx context.Context, id string) error
	ListReports(ctx context.Context) ([]domain.Report, error)
}
