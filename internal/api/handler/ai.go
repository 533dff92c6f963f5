package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/trungle-dev/content-planner/internal/ai"
	"github.com/trungle-dev/content-planner/internal/api/response"
	"github.com/trungle-dev/content-planner/internal/domain"
	"github.com/trungle-dev/content-planner/internal/service"
)

// AIHandler handles AI generation endpoints
type AIHandler struct {
	plannerService *service.PlannerService
	aiService      *service.AIService
}

// NewAIHandler creates a new AI handler
func NewAIHandler(plannerService *service.PlannerService, aiService *service.AIService) *AIHandler {
	return &AIHandler{plannerService: plannerService, aiService: aiService}
}

type planRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id" validate:"required"`
	StartDate   string    `json:"start_date" validate:"required"`
	EndDate     string    `json:"end_date" validate:"required"`
	PostsPerDay int       `json:"posts_per_day,omitempty"`
}

// GeneratePlan handles AI content plan generation
func (h *AIHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var input planRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	start, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		response.BadRequest(w, "invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", input.EndDate)
	if err != nil {
		response.BadRequest(w, "invalid end_date, expected YYYY-MM-DD")
		return
	}

	result, err := h.plannerService.GeneratePlan(r.Context(), service.PlanRequest{
		WorkspaceID: input.WorkspaceID,
		StartDate:   start,
		EndDate:     end,
		PostsPerDay: input.PostsPerDay,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, result)
}

type writeRequest struct {
	WorkspaceID  uuid.UUID            `json:"workspace_id" validate:"required"`
	Topic        string               `json:"topic" validate:"required"`
	FunnelStage  domain.FunnelStage   `json:"funnel_stage,omitempty"`
	Format       domain.ContentFormat `json:"format,omitempty"`
	Platform     string               `json:"platform,omitempty"`
	Instructions string               `json:"instructions,omitempty"`
}

// WriteContent handles AI post writing
func (h *AIHandler) WriteContent(w http.ResponseWriter, r *http.Request) {
	var input writeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	result, err := h.aiService.Write(r.Context(), service.WriteParams{
		WorkspaceID:  input.WorkspaceID,
		Topic:        input.Topic,
		FunnelStage:  input.FunnelStage,
		Format:       input.Format,
		Platform:     input.Platform,
		Instructions: input.Instructions,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, result)
}

type rewriteRequest struct {
	WorkspaceID uuid.UUID        `json:"workspace_id" validate:"required"`
	Action      ai.RewriteAction `json:"action" validate:"required,oneof=rewrite expand summarize tiktok facebook instagram"`
	Text        string           `json:"text" validate:"required"`
}

// Rewrite handles AI copy transformation
func (h *AIHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	var input rewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	text, err := h.aiService.Rewrite(r.Context(), input.WorkspaceID, input.Action, input.Text)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, map[string]string{"text": text})
}

type imagePromptRequest struct {
	WorkspaceID uuid.UUID `json:"workspace_id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Body        string    `json:"body,omitempty"`
}

// ImagePrompt handles image-prompt generation for a post
func (h *AIHandler) ImagePrompt(w http.ResponseWriter, r *http.Request) {
	var input imagePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	prompt, err := h.aiService.ImagePrompt(r.Context(), input.WorkspaceID, input.Title, input.Body)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, map[string]string{"prompt": prompt})
}
