package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/service"
)

type WorkerHandler struct {
	workerSvc service.WorkerService
}

func NewWorkerHandler(workerSvc service.WorkerService) *WorkerHandler {
	return &WorkerHandler{workerSvc: workerSvc}
}

func (h *WorkerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var worker domain.Worker
	if err := decodeBody(r, &worker); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := h.workerSvc.AddWorker(r.Context(), &worker); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, worker)
}

func (h *WorkerHandler) Get(w http.ResponseWriter, r *http.Request) {
	worker, err := h.workerSvc.GetWorker(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, worker)
}

func (h *WorkerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var worker domain.Worker
	if err := decodeBody(r, &worker); err != nil {
		writeBadRequest(w, err)
		return
	}
	worker.ID = mux.Vars(r)["id"]
	if err := h.workerSvc.UpdateWorker(r.Context(), &worker); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, worker)
}

func (h *WorkerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.workerSvc.DeleteWorker(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// List returns all workers, or those attached to one operation when the
// operation_id query parameter is set.
func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		workers []domain.Worker
		err     error
	)
	if operationID := r.URL.Query().Get("operation_id"); operationID != "" {
		workers, err = h.workerSvc.ListWorkersByOperation(r.Context(), operationID)
	} else {
		workers, err = h.workerSvc.ListWorkers(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workers)
}

func (h *WorkerHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Active bool `json:"active"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := h.workerSvc.SetWorkerActive(r.Context(), mux.Vars(r)["id"], body.Active); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, body)
}
