package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/service"
)

type PaymentGroupHandler struct {
	pgSvc service.PaymentGroupService
}

func NewPaymentGroupHandler(pgSvc service.PaymentGroupService) *PaymentGroupHandler {
	return &PaymentGroupHandler{pgSvc: pgSvc}
}

func (h *PaymentGroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var pg domain.PaymentGroup
	if err := decodeBody(r, &pg); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := h.pgSvc.CreatePaymentGroup(r.Context(), &pg); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pg)
}

func (h *PaymentGroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	pg, err := h.pgSvc.GetPaymentGroup(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pg)
}

func (h *PaymentGroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	var pg domain.PaymentGroup
	if err := decodeBody(r, &pg); err != nil {
		writeBadRequest(w, err)
		return
	}
	pg.ID = mux.Vars(r)["id"]
	if err := h.pgSvc.UpdatePaymentGroup(r.Context(), &pg); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pg)
}

func (h *PaymentGroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.pgSvc.DeletePaymentGroup(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *PaymentGroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.pgSvc.ListPaymentGroups(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}
