package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"farmforce-backend/internal/domain"
	"farmforce-backend/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var report domain.Report
	if err := decodeBody(r, &report); err != nil {
		writeBadRequest(w, err)
		return
	}
	if err := h.reportSvc.CreateReport(r.Context(), &report); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.GetReport(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	var report domain.Report
	if err := decodeBody(r, &report); err != nil {
		writeBadRequest(w, err)
		return
	}
	report.ID = mux.Vars(r)["id"]
	if err := h.reportSvc.UpdateReport(r.Context(), &report); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reportSvc.DeleteReport(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportSvc.ListReports(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}
