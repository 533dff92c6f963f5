package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/trungle-dev/content-planner/internal/api/response"
	"github.com/trungle-dev/content-planner/internal/service"
)

// CalendarHandler handles calendar endpoints
type CalendarHandler struct {
	calendarService *service.CalendarService
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// Month handles the month view for /calendar/{year}/{month}
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "invalid year")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "invalid month")
		return
	}

	workspaceID, ok := workspaceFilter(r)
	if !ok {
		response.BadRequest(w, "invalid workspace_id")
		return
	}

	view, err := h.calendarService.Month(r.Context(), year, month, workspaceID)
	if err != nil {
		serviceError(w, err)
		return
	}

	response.OK(w, view)
}
