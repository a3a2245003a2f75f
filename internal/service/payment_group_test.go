package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"farmforce-backend/internal/domain"
)

func TestCreatePaymentGroup(t *testing.T) {
	pgRepo := new(MockPaymentGroupRepo)
	workerRepo := new(MockWorkerRepo)
	svc := NewPaymentGroupService(pgRepo, workerRepo)

	workerRepo.On("GetByID", mock.Anything, "w-1").Return(&domain.Worker{ID: "w-1"}, nil)
	workerRepo.On("GetByID", mock.Anything, "w-2").Return(&domain.Worker{ID: "w-2"}, nil)
	pgRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.PaymentGroup")).Return(nil)

	err := svc.CreatePaymentGroup(context.Background(), &domain.PaymentGroup{
		Description: "Harvest crew A",
		WorkerIDs:   []string{"w-1", "w-2"},
	})

	assert.NoError(t, err)
	pgRepo.AssertExpectations(t)
	workerRepo.AssertExpectations(t)
}

func TestCreatePaymentGroupUnknownWorker(t *testing.T) {
	pgRepo := new(MockPaymentGroupRepo)
	workerRepo := new(MockWorkerRepo)
	svc := NewPaymentGroupService(pgRepo, workerRepo)

	workerRepo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	err := svc.CreatePaymentGroup(context.Background(), &domain.PaymentGroup{
		Description: "Harvest crew B",
		WorkerIDs:   []string{"ghost"},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	pgRepo.AssertNotCalled(t, "Create")
}

func TestCreatePaymentGroupRequiresDescription(t *testing.T) {
	pgRepo := new(MockPaymentGroupRepo)
	workerRepo := new(MockWorkerRepo)
	svc := NewPaymentGroupService(pgRepo, workerRepo)

	err := svc.CreatePaymentGroup(context.Background(), &domain.PaymentGroup{
		WorkerIDs: []string{"w-1"},
	})

	assert.Error(t, err)
	pgRepo.AssertNotCalled(t, "Create")
}
