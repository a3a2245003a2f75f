package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"farmforce-backend/internal/domain"
)

type MockWorkerService struct {
	mock.Mock
}

func (m *MockWorkerService) AddWorker(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}
func (m *MockWorkerService) GetWorker(ctx context.Context, id string) (*domain.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}
func (m *MockWorkerService) UpdateWorker(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}
func (m *MockWorkerService) DeleteWorker(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockWorkerService) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Worker), args.Error(1)
}
func (m *MockWorkerService) ListWorkersByOperation(ctx context.Context, operationID string) ([]domain.Worker, error) {
	args := m.Called(ctx, operationID)
	return args.Get(0).([]domain.Worker), args.Error(1)
}
func (m *MockWorkerService) SetWorkerActive(ctx context.Context, id string, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func TestWorkerCreate(t *testing.T) {
	svc := new(MockWorkerService)
	handler := NewWorkerHandler(svc)

	svc.On("AddWorker", mock.Anything, mock.AnythingOfType("*domain.Worker")).Return(nil)

	body, _ := json.Marshal(domain.Worker{FirstName: "Maria", LastName: "Lopez"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/workers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestWorkerCreateBadBody(t *testing.T) {
	svc := new(MockWorkerService)
	handler := NewWorkerHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/workers", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "AddWorker")
}

func TestWorkerGet(t *testing.T) {
	svc := new(MockWorkerService)
	handler := NewWorkerHandler(svc)

	svc.On("GetWorker", mock.Anything, "w-1").Return(&domain.Worker{
		ID: "w-1", FirstName: "Maria", LastName: "Lopez", CurrentBalance: 210,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workers/w-1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "w-1"})
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got domain.Worker
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "w-1", got.ID)
	assert.Equal(t, 210.0, got.CurrentBalance)
}

func TestWorkerGetNotFound(t *testing.T) {
	svc := new(MockWorkerService)
	handler := NewWorkerHandler(svc)

	svc.On("GetWorker", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workers/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "missing"})
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWorkerListByOperation(t *testing.T) {
	svc := new(MockWorkerService)
	handler := NewWorkerHandler(svc)

	svc.On("ListWorkersByOperation", mock.Anything, "op-1").Return([]domain.Worker{
		{ID: "w-1"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/workers?operation_id=op-1", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertNotCalled(t, "ListWorkers")
}

func TestWorkerSetActive(t *testing.T) {
	svc := new(MockWorkerService)
	handler := NewWorkerHandler(svc)

	svc.On("SetWorkerActive", mock.Anything, "w-1", false).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/workers/w-1/active",
		bytes.NewReader([]byte(`{"active":false}`)))
	req = mux.SetURLVars(req, map[string]string{"id": "w-1"})
	rec := httptest.NewRecorder()

	handler.SetActive(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
