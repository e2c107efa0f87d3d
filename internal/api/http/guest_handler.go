package http

import (
	"net/http"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/service"
)

type GuestHandler struct {
	rosterSvc   service.RosterService
	dispatchSvc service.DispatchService
}

func NewGuestHandler(rosterSvc service.RosterService, dispatchSvc service.DispatchService) *GuestHandler {
	return &GuestHandler{rosterSvc: rosterSvc, dispatchSvc: dispatchSvc}
}

type addGuestRequest struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	AccompanyingCount int32  `json:"accompanying_count"`
}

func (h *GuestHandler) Add(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req addGuestRequest
	if !decodeBody(w, r, &req) {
		return
	}

	guest, err := h.rosterSvc.AddGuest(r.Context(), userIDFromContext(r.Context()), eventID, req.Name, req.Phone, req.AccompanyingCount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, guest)
}

func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	guestID, ok := pathID(w, r, "guestID")
	if !ok {
		return
	}
	var patch domain.GuestPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	guest, err := h.rosterSvc.UpdateGuest(r.Context(), userIDFromContext(r.Context()), eventID, guestID, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guest)
}

func (h *GuestHandler) Remove(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	guestID, ok := pathID(w, r, "guestID")
	if !ok {
		return
	}

	if err := h.rosterSvc.RemoveGuest(r.Context(), userIDFromContext(r.Context()), eventID, guestID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	guests, err := h.rosterSvc.ListGuests(r.Context(), userIDFromContext(r.Context()), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, guests)
}

type dispatchResponse struct {
	GuestID int32  `json:"guest_id"`
	SentAt  string `json:"sent_at"`
}

// MarkDispatched records that the host handed the invitation to this
// guest (the WhatsApp message itself is composed and sent client-side).
// Repeat calls return 200 with the original timestamp.
func (h *GuestHandler) MarkDispatched(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	guestID, ok := pathID(w, r, "guestID")
	if !ok {
		return
	}

	sentAt, err := h.dispatchSvc.MarkDispatched(r.Context(), userIDFromContext(r.Context()), eventID, guestID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := dispatchResponse{GuestID: guestID}
	if sentAt != nil {
		resp.SentAt = sentAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	writeJSON(w, http.StatusOK, resp)
}
