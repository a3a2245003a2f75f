package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/service"
)

type FarmHandler struct {
	farmSvc service.FarmService
}

func NewFarmHandler(farmSvc service.FarmService) *FarmHandler {
	return &FarmHandler{farmSvc: farmSvc}
}

func (h *FarmHandler) Create(w http.ResponseWriter, r *http.Request) {
	var farm domain.Farm
	if err := decodeBody(r, &farm); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := h.farmSvc.CreateFarm(r.Context(), &farm); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, farm)
}

func (h *FarmHandler) Get(w http.ResponseWriter, r *http.Request) {
	farm, err := h.farmSvc.GetFarm(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, farm)
}

func (h *FarmHandler) Update(w http.ResponseWriter, r *http.Request) {
	var farm domain.Farm
	if err := decodeBody(r, &farm); err != nil {
		writeBadRequest(w, err)
		return
	}
	farm.ID = mux.Vars(r)["id"]
	if err := h.farmSvc.UpdateFarm(r.Context(), &farm); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, farm)
}

func (h *FarmHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.farmSvc.DeleteFarm(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *FarmHandler) List(w http.ResponseWriter, r *http.Request) {
	farms, err := h.farmSvc.ListFarms(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, farms)
}
