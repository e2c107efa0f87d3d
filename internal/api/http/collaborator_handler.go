package http

import (
	"net/http"

	"dawati-backend/internal/service"
)

type CollaboratorHandler struct {
	accessSvc service.AccessService
}

func NewCollaboratorHandler(accessSvc service.AccessService) *CollaboratorHandler {
	return &CollaboratorHandler{accessSvc: accessSvc}
}

type addCollaboratorRequest struct {
	UserID         int32 `json:"user_id"`
	AllocatedQuota int32 `json:"allocated_quota"`
}

func (h *CollaboratorHandler) Add(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req addCollaboratorRequest
	if !decodeBody(w, r, &req) {
		return
	}

	collab, err := h.accessSvc.AddCollaborator(r.Context(), userIDFromContext(r.Context()), eventID, req.UserID, req.AllocatedQuota)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, collab)
}

type updateAllocationRequest struct {
	AllocatedQuota int32 `json:"allocated_quota"`
}

func (h *CollaboratorHandler) UpdateAllocation(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	collabID, ok := pathID(w, r, "collabID")
	if !ok {
		return
	}
	var req updateAllocationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	collab, err := h.accessSvc.UpdateAllocation(r.Context(), userIDFromContext(r.Context()), eventID, collabID, req.AllocatedQuota)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collab)
}

func (h *CollaboratorHandler) Remove(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	collabID, ok := pathID(w, r, "collabID")
	if !ok {
		return
	}

	if err := h.accessSvc.RemoveCollaborator(r.Context(), userIDFromContext(r.Context()), eventID, collabID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *CollaboratorHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	collabs, err := h.accessSvc.ListCollaborators(r.Context(), userIDFromContext(r.Context()), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collabs)
}

// Role lets the UI ask "what am I on this event" once and drive its
// menus from the answer.
func (h *CollaboratorHandler) Role(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	grant, err := h.accessSvc.ResolveRole(r.Context(), userIDFromContext(r.Context()), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grant)
}
