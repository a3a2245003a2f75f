package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/service"
)

type OperationHandler struct {
	opSvc service.OperationService
}

func NewOperationHandler(opSvc service.OperationService) *OperationHandler {
	return &OperationHandler{opSvc: opSvc}
}

func (h *OperationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var op domain.Operation
	if err := decodeBody(r, &op); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := h.opSvc.CreateOperation(r.Context(), &op); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, op)
}

func (h *OperationHandler) Get(w http.ResponseWriter, r *http.Request) {
	op, err := h.opSvc.GetOperation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}

func (h *OperationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var op domain.Operation
	if err := decodeBody(r, &op); err != nil {
		writeBadRequest(w, err)
		return
	}
	op.ID = mux.Vars(r)["id"]
	if err := h.opSvc.UpdateOperation(r.Context(), &op); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, op)
}

func (h *OperationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.opSvc.DeleteOperation(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *OperationHandler) List(w http.ResponseWriter, r *http.Request) {
	ops, err := h.opSvc.ListOperations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ops)
}
