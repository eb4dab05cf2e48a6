package handlers

import (
	"net/http"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/request"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/response"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/service"
)

// EventHandler handles HTTP requests for the application event log.
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new EventHandler with the provided service dependency.
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// Events handles GET requests to query the event log.
// Filters arrive as query parameters; levels and categories accept
// comma-separated lists. Results are cursor-paginated.
//
// Endpoint: GET /api/event?levels=...&categories=...&start_date=...&end_date=...&message=...&sort_dir=...&cursor=...&per_page=...
// Response: 200 OK with array of Event
// Error: 400 Bad Request if a filter parameter fails validation
// Error: 500 Internal Server Error if retrieval fails
func (h *EventHandler) Events(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters, err := request.ParseEventFilters(
		q.Get("levels"),
		q.Get("categories"),
		q.Get("start_date"),
		q.Get("end_date"),
		q.Get("message"),
		q.Get("sort_dir"),
		q.Get("cursor"),
		q.Get("per_page"),
	)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	events, err := h.eventService.GetEvents(*filters)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve events", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, events)
}
