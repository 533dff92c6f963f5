package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/trungle-dev/content-planner/internal/api/middleware"
	"github.com/trungle-dev/content-planner/internal/api/response"
	"github.com/trungle-dev/content-planner/internal/domain"
	"github.com/trungle-dev/content-planner/internal/service"
)

// WorkspaceHandler handles workspace endpoints
type WorkspaceHandler struct {
	workspaceService *service.WorkspaceService
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaceService *service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// Create handles workspace creation
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.WorkspaceCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	workspace, err := h.workspaceService.Create(r.Context(), &input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.Created(w, workspace)
}

// List handles listing workspaces
func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.workspaceService.List(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, workspaces)
}

// GetDefault returns the oldest workspace, creating one when none exist
func (h *WorkspaceHandler) GetDefault(w http.ResponseWriter, r *http.Request) {
	workspace, err := h.workspaceService.EnsureDefault(r.Context())
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, workspace)
}

// Get handles getting a workspace with its attachments
func (h *WorkspaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID")
		return
	}

	detail, err := h.workspaceService.Get(r.Context(), workspaceID)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, detail)
}

// Delete handles deleting a workspace
func (h *WorkspaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID")
		return
	}

	if err := h.workspaceService.Delete(r.Context(), workspaceID); err != nil {
		serviceError(w, err)
		return
	}

	response.NoContent(w)
}

// UpsertBrand handles writing the workspace brand voice
func (h *WorkspaceHandler) UpsertBrand(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID")
		return
	}

	var input domain.BrandVoiceUpsert
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	brand, err := h.workspaceService.UpsertBrand(r.Context(), workspaceID, &input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, brand)
}

// GetBrand handles reading the workspace brand voice
func (h *WorkspaceHandler) GetBrand(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID")
		return
	}

	brand, err := h.workspaceService.GetBrand(r.Context(), workspaceID)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, brand)
}

// UpsertFunnel handles writing the workspace funnel allocation
func (h *WorkspaceHandler) UpsertFunnel(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID")
		return
	}

	var input domain.FunnelConfigUpsert
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	cfg, err := h.workspaceService.UpsertFunnel(r.Context(), workspaceID, &input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, cfg)
}

// GetFunnel handles reading the workspace funnel allocation
func (h *WorkspaceHandler) GetFunnel(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID")
		return
	}

	cfg, err := h.workspaceService.GetFunnel(r.Context(), workspaceID)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, cfg)
}

// CreateCampaign handles campaign creation
func (h *WorkspaceHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID")
		return
	}

	var input domain.CampaignCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	campaign, err := h.workspaceService.CreateCampaign(r.Context(), workspaceID, &input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.Created(w, campaign)
}

// ListCampaigns handles listing a workspace's campaigns
func (h *WorkspaceHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := middleware.GetWorkspaceID(r.Context())
	if !ok {
		response.BadRequest(w, "missing workspace ID")
		return
	}

	campaigns, err := h.workspaceService.ListCampaigns(r.Context(), workspaceID)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, campaigns)
}

// DeleteCampaign handles deleting a campaign
func (h *WorkspaceHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(chi.URLParam(r, "campaignID"))
	if err != nil {
		response.BadRequest(w, "invalid campaign ID")
		return
	}

	if err := h.workspaceService.DeleteCampaign(r.Context(), campaignID); err != nil {
		serviceError(w, err)
		return
	}

	response.NoContent(w)
}
