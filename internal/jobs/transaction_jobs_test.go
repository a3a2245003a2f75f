package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"farmforce-backend/internal/config"
	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/trigger"
)

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

type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) HandleCreated(ctx context.Context, evt *trigger.CreateEvent) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func jobConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Trigger.Collection = "transactions"
	cfg.Trigger.StalledAfterMinutes = 15
	return cfg
}

func TestReprocessStalledTransactions(t *testing.T) {
	txRepo := new(MockTransactionRepo)
	handler := new(MockHandler)
	runner := NewJobRunner(txRepo, handler, jobConfig())

	stalled := []domain.Transaction{
		{ID: "tx-1", WorkerID: "w-1", Amount: 100},
		{ID: "tx-2", WorkerID: "w-2", Amount: -40},
	}
	txRepo.On("ListUnprocessedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(stalled, nil)
	handler.On("HandleCreated", mock.Anything, mock.MatchedBy(func(evt *trigger.CreateEvent) bool {
		return evt.ID == "tx-1" && evt.Data != nil && evt.Data.ID == "tx-1"
	})).Return(nil).Once()
	handler.On("HandleCreated", mock.Anything, mock.MatchedBy(func(evt *trigger.CreateEvent) bool {
		return evt.ID == "tx-2" && evt.Data != nil && evt.Data.ID == "tx-2"
	})).Return(nil).Once()

	runner.ReprocessStalledTransactions()

	txRepo.AssertExpectations(t)
	handler.AssertExpectations(t)
}

func TestReprocessStalledTransactionsEmpty(t *testing.T) {
	txRepo := new(MockTransactionRepo)
	handler := new(MockHandler)
	runner := NewJobRunner(txRepo, handler, jobConfig())

	txRepo.On("ListUnprocessedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]domain.Transaction{}, nil)

	runner.ReprocessStalledTransactions()

	handler.AssertNotCalled(t, "HandleCreated")
}

func TestReprocessStalledTransactionsListFailure(t *testing.T) {
	txRepo := new(MockTransactionRepo)
	handler := new(MockHandler)
	runner := NewJobRunner(txRepo, handler, jobConfig())

	txRepo.On("ListUnprocessedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]domain.Transaction{}, errors.New("firestore unavailable"))

	runner.ReprocessStalledTransactions()

	handler.AssertNotCalled(t, "HandleCreated")
}

func TestReprocessContinuesPastHandlerFailure(t *testing.T) {
	txRepo := new(MockTransactionRepo)
	handler := new(MockHandler)
	runner := NewJobRunner(txRepo, handler, jobConfig())

	stalled := []domain.Transaction{
		{ID: "tx-1", WorkerID: "w-1", Amount: 100},
		{ID: "tx-2", WorkerID: "w-2", Amount: 60},
	}
	txRepo.On("ListUnprocessedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(stalled, nil)
	handler.On("HandleCreated", mock.Anything, mock.MatchedBy(func(evt *trigger.CreateEvent) bool {
		return evt.ID == "tx-1"
	})).Return(errors.New("type lookup failed")).Once()
	handler.On("HandleCreated", mock.Anything, mock.MatchedBy(func(evt *trigger.CreateEvent) bool {
		return evt.ID == "tx-2"
	})).Return(nil).Once()

	runner.ReprocessStalledTransactions()

	handler.AssertExpectations(t)
}
