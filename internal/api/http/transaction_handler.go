package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/service"
)

type TransactionHandler struct {
	txSvc service.TransactionService
}

func NewTransactionHandler(txSvc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txSvc: txSvc}
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var tx domain.Transaction
	if err := decodeBody(r, &tx); err != nil {
		writeBadRequest(w, err)
		return
	}
	id, err := h.txSvc.CreateTransaction(r.Context(), &tx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.txSvc.GetTransaction(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var tx domain.Transaction
	if err := decodeBody(r, &tx); err != nil {
		writeBadRequest(w, err)
		return
	}
	tx.ID = mux.Vars(r)["id"]
	if err := h.txSvc.UpdateTransaction(r.Context(), &tx); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.txSvc.DeleteTransaction(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *TransactionHandler) ListByWorker(w http.ResponseWriter, r *http.Request) {
	txs, err := h.txSvc.ListTransactionsByWorker(r.Context(), mux.Vars(r)["workerId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

// Transaction types

func (h *TransactionHandler) CreateType(w http.ResponseWriter, r *http.Request) {
	var tt domain.TransactionType
	if err := decodeBody(r, &tt); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := h.txSvc.CreateTransactionType(r.Context(), &tt); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tt)
}

func (h *TransactionHandler) GetType(w http.ResponseWriter, r *http.Request) {
	tt, err := h.txSvc.GetTransactionType(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tt)
}

func (h *TransactionHandler) UpdateType(w http.ResponseWriter, r *http.Request) {
	var tt domain.TransactionType
	if err := decodeBody(r, &tt); err != nil {
		writeBadRequest(w, err)
		return
	}
	tt.ID = mux.Vars(r)["id"]
	if err := h.txSvc.UpdateTransactionType(r.Context(), &tt); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tt)
}

func (h *TransactionHandler) DeleteType(w http.ResponseWriter, r *http.Request) {
	if err := h.txSvc.DeleteTransactionType(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *TransactionHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.txSvc.ListTransactionTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}
