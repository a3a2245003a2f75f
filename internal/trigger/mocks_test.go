package trigger

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"farmforce-backend/internal/domain"
)

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) Update(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTransactionRepo) ListByWorker(ctx context.Context, workerID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, workerID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) ListUnprocessedBefore(ctx context.Context, cutoff time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) SetAmount(ctx context.Context, id string, amount float64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}
func (m *MockTransactionRepo) ApplyDelta(ctx context.Context, txID string, workerIDs []string, delta float64) error {
	args := m.Called(ctx, txID, workerIDs, delta)
	return args.Error(0)
}

// MockTransactionTypeRepo
type MockTransactionTypeRepo struct {
	mock.Mock
}

func (m *MockTransactionTypeRepo) Create(ctx context.Context, tt *domain.TransactionType) error {
	args := m.Called(ctx, tt)
	return args.Error(0)
}
func (m *MockTransactionTypeRepo) GetByID(ctx context.Context, id string) (*domain.TransactionType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionType), args.Error(1)
}
func (m *MockTransactionTypeRepo) Update(ctx context.Context, tt *domain.TransactionType) error {
	args := m.Called(ctx, tt)
	return args.Error(0)
}
func (m *MockTransactionTypeRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockTransactionTypeRepo) List(ctx context.Context) ([]domain.TransactionType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TransactionType), args.Error(1)
}

// MockPaymentGroupRepo
type MockPaymentGroupRepo struct {
	mock.Mock
}

func (m *MockPaymentGroupRepo) Create(ctx context.Context, pg *domain.PaymentGroup) error {
	args := m.Called(ctx, pg)
	return args.Error(0)
}
func (m *MockPaymentGroupRepo) GetByID(ctx context.Context, id string) (*domain.PaymentGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentGroup), args.Error(1)
}
func (m *MockPaymentGroupRepo) Update(ctx context.Context, pg *domain.PaymentGroup) error {
	args := m.Called(ctx, pg)
	return args.Error(0)
}
func (m *MockPaymentGroupRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentGroupRepo) List(ctx context.Context) ([]domain.PaymentGroup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PaymentGroup), args.Error(1)
}
