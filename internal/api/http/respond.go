package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/logger"
	"dawati-backend/internal/service"
)

type errorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps the engine's error taxonomy onto HTTP status codes.
// Every error here is recoverable by the caller; the body carries what
// they need to correct the request.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: ve.Reason, Field: ve.Field})
		return
	}

	var qe *domain.QuotaExceededError
	if errors.As(err, &qe) {
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:   qe.Error(),
			Details: map[string]int32{"remaining": qe.Remaining, "requested": qe.Requested},
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "not authorized for this action"})
	case errors.Is(err, domain.ErrPackageTierUnsupported):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "package tier does not support collaborators"})
	case errors.Is(err, domain.ErrEventNotReady):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "event is not approved yet; invitations cannot be sent"})
	case errors.Is(err, domain.ErrInvalidState):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "event state does not permit this action"})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}
