package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/service"
)

type EventHandler struct {
	eventSvc service.EventService
}

func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

type createEventRequest struct {
	PackageType      string `json:"package_type"`
	TotalInviteQuota int32  `json:"total_invite_quota"`
	Title            string `json:"title"`
	EventDate        string `json:"event_date"`
}

// Create is the entry point the payment collaborator hits once payment
// clears; the event starts pending review.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event, err := h.eventSvc.CreateEvent(
		r.Context(),
		userIDFromContext(r.Context()),
		domain.PackageType(req.PackageType),
		req.TotalInviteQuota,
		req.Title,
		req.EventDate,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	event, err := h.eventSvc.GetEvent(r.Context(), userIDFromContext(r.Context()), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Summary(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	summary, err := h.eventSvc.GetEventSummary(r.Context(), userIDFromContext(r.Context()), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

type listResponse struct {
	Items any   `json:"items"`
	Total int32 `json:"total"`
}

func (h *EventHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	events, total, err := h.eventSvc.ListMyEvents(r.Context(), userIDFromContext(r.Context()), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: events, Total: total})
}

func (h *EventHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	event, err := h.eventSvc.CancelEvent(r.Context(), userIDFromContext(r.Context()), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + name})
		return 0, false
	}
	return int32(id), true
}

func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
