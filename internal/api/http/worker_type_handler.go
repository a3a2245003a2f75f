package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/service"
)

type WorkerTypeHandler struct {
	wtSvc service.WorkerTypeService
}

func NewWorkerTypeHandler(wtSvc service.WorkerTypeService) *WorkerTypeHandler {
	return &WorkerTypeHandler{wtSvc: wtSvc}
}

func (h *WorkerTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var wt domain.WorkerType
	if err := decodeBody(r, &wt); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := h.wtSvc.CreateWorkerType(r.Context(), &wt); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wt)
}

func (h *WorkerTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	wt, err := h.wtSvc.GetWorkerType(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wt)
}

func (h *WorkerTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var wt domain.WorkerType
	if err := decodeBody(r, &wt); err != nil {
		writeBadRequest(w, err)
		return
	}
	wt.ID = mux.Vars(r)["id"]
	if err := h.wtSvc.UpdateWorkerType(r.Context(), &wt); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wt)
}

func (h *WorkerTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.wtSvc.DeleteWorkerType(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *WorkerTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.wtSvc.ListWorkerTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}
