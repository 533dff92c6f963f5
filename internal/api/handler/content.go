package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/trungle-dev/content-planner/internal/api/response"
	"github.com/trungle-dev/content-planner/internal/domain"
	"github.com/trungle-dev/content-planner/internal/service"
)

// ContentHandler handles content item endpoints
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// workspaceFilter parses the optional workspace_id query parameter
func workspaceFilter(r *http.Request) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get("workspace_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// contentID parses the content ID URL parameter
func contentID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "contentID"))
}

// Create handles content item creation
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ContentCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	item, err := h.contentService.Create(r.Context(), &input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.Created(w, item)
}

// List handles listing content items, optionally filtered by workspace
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := workspaceFilter(r)
	if !ok {
		response.BadRequest(w, "invalid workspace_id")
		return
	}

	items, err := h.contentService.List(r.Context(), workspaceID)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, items)
}

// Get handles getting a content item by ID
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := contentID(r)
	if err != nil {
		response.BadRequest(w, "invalid content ID")
		return
	}

	item, err := h.contentService.Get(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, item)
}

// Update handles a partial content item update
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := contentID(r)
	if err != nil {
		response.BadRequest(w, "invalid content ID")
		return
	}

	var input domain.ContentUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	item, err := h.contentService.Update(r.Context(), id, &input)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, item)
}

// Delete handles deleting a content item
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := contentID(r)
	if err != nil {
		response.BadRequest(w, "invalid content ID")
		return
	}

	if err := h.contentService.Delete(r.Context(), id); err != nil {
		serviceError(w, err)
		return
	}

	response.NoContent(w)
}
