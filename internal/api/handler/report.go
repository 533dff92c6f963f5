package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/trungle-dev/content-planner/internal/api/response"
	"github.com/trungle-dev/content-planner/internal/service"
)

// ReportHandler handles dashboard analytics endpoints
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Report handles the content-mix report, optionally scoped to a workspace
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFilter(r)
	if !ok {
		response.BadRequest(w, "invalid workspace_id")
		return
	}

	report, err := h.reportService.Report(r.Context(), workspaceID)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, report)
}

// Stats handles the dashboard aggregate view
func (h *ReportHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.Stats(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, stats)
}

// Audit handles the workspace health score
func (h *ReportHandler) Audit(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := uuid.Parse(chi.URLParam(r, "workspaceID"))
	if err != nil {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	audit, err := h.reportService.Audit(r.Context(), workspaceID)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, audit)
}

// Strategist handles the composite strategist score
func (h *ReportHandler) Strategist(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := uuid.Parse(chi.URLParam(r, "workspaceID"))
	if err != nil {
		response.BadRequest(w, "invalid workspace ID")
		return
	}

	result, err := h.reportService.Strategist(r.Context(), workspaceID)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, result)
}
