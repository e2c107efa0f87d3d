package http

import (
	"net/http"

	"dawati-backend/internal/service"
)

type AdminHandler struct {
	approvalSvc service.ApprovalService
	assetSvc    service.CardAssetService
}

func NewAdminHandler(approvalSvc service.ApprovalService, assetSvc service.CardAssetService) *AdminHandler {
	return &AdminHandler{approvalSvc: approvalSvc, assetSvc: assetSvc}
}

func (h *AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	events, total, err := h.approvalSvc.ListPendingEvents(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: events, Total: total})
}

type approveRequest struct {
	CardAssetID int32  `json:"card_asset_id"`
	Notes       string `json:"notes"`
}

func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req approveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event, err := h.approvalSvc.Approve(r.Context(), userIDFromContext(r.Context()), eventID, req.CardAssetID, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req rejectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event, err := h.approvalSvc.Reject(r.Context(), userIDFromContext(r.Context()), eventID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *AdminHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	event, err := h.approvalSvc.Reopen(r.Context(), userIDFromContext(r.Context()), eventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

type bulkApproveRequest struct {
	Items []service.BulkApprovalItem `json:"items"`
	Notes string                     `json:"notes"`
}

// BulkApprove returns 200 even when some items fail; the caller reads
// the per-event results.
func (h *AdminHandler) BulkApprove(w http.ResponseWriter, r *http.Request) {
	var req bulkApproveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "items must not be empty"})
		return
	}

	results := h.approvalSvc.BulkApprove(r.Context(), userIDFromContext(r.Context()), req.Items, req.Notes)
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

type uploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

func (h *AdminHandler) GetCardUploadURL(w http.ResponseWriter, r *http.Request) {
	var req uploadURLRequest
	if !decodeBody(w, r, &req) {
		return
	}

	asset, uploadURL, err := h.assetSvc.GetUploadURL(r.Context(), userIDFromContext(r.Context()), req.Filename, req.ContentType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"asset": asset, "upload_url": uploadURL})
}

func (h *AdminHandler) ConfirmCardUpload(w http.ResponseWriter, r *http.Request) {
	assetID, ok := pathID(w, r, "assetID")
	if !ok {
		return
	}

	asset, err := h.assetSvc.ConfirmUpload(r.Context(), userIDFromContext(r.Context()), assetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (h *AdminHandler) GetCardDownloadURL(w http.ResponseWriter, r *http.Request) {
	assetID, ok := pathID(w, r, "assetID")
	if !ok {
		return
	}

	url, err := h.assetSvc.GetDownloadURL(r.Context(), userIDFromContext(r.Context()), assetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"download_url": url})
}
