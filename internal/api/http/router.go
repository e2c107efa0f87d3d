package http

import (
	"github.com/gorilla/mux"

	"dawati-backend/internal/storage"
)

// Handlers groups everything the router needs.
type Handlers struct {
	Auth         *AuthHandler
	Event        *EventHandler
	Guest        *GuestHandler
	Collaborator *CollaboratorHandler
	Admin        *AdminHandler
}

// RegisterRoutes wires all API routes onto the router.
func RegisterRoutes(router *mux.Router, h Handlers, auth *AuthMiddleware) {
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods("POST")
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods("POST")

	// Events (owner / payment collaborator)
	api.HandleFunc("/events", auth.Require(h.Event.Create)).Methods("POST")
	api.HandleFunc("/events", auth.Require(h.Event.ListMine)).Methods("GET")
	api.HandleFunc("/events/{id}", auth.Require(h.Event.Get)).Methods("GET")
	api.HandleFunc("/events/{id}/summary", auth.Require(h.Event.Summary)).Methods("GET")
	api.HandleFunc("/events/{id}/cancel", auth.Require(h.Event.Cancel)).Methods("POST")
	api.HandleFunc("/events/{id}/role", auth.Require(h.Collaborator.Role)).Methods("GET")

	// Guest roster
	api.HandleFunc("/events/{id}/guests", auth.Require(h.Guest.Add)).Methods("POST")
	api.HandleFunc("/events/{id}/guests", auth.Require(h.Guest.List)).Methods("GET")
	api.HandleFunc("/events/{id}/guests/{guestID}", auth.Require(h.Guest.Update)).Methods("PATCH")
	api.HandleFunc("/events/{id}/guests/{guestID}", auth.Require(h.Guest.Remove)).Methods("DELETE")
	api.HandleFunc("/events/{id}/guests/{guestID}/dispatched", auth.Require(h.Guest.MarkDispatched)).Methods("POST")

	// Collaborators (owner only, enforced in the service)
	api.HandleFunc("/events/{id}/collaborators", auth.Require(h.Collaborator.Add)).Methods("POST")
	api.HandleFunc("/events/{id}/collaborators", auth.Require(h.Collaborator.List)).Methods("GET")
	api.HandleFunc("/events/{id}/collaborators/{collabID}", auth.Require(h.Collaborator.UpdateAllocation)).Methods("PATCH")
	api.HandleFunc("/events/{id}/collaborators/{collabID}", auth.Require(h.Collaborator.Remove)).Methods("DELETE")

	// Admin review queue
	api.HandleFunc("/admin/events", auth.RequireAdmin(h.Admin.ListPending)).Methods("GET")
	api.HandleFunc("/admin/events/bulk-approve", auth.RequireAdmin(h.Admin.BulkApprove)).Methods("POST")
	api.HandleFunc("/admin/events/{id}/approve", auth.RequireAdmin(h.Admin.Approve)).Methods("POST")
	api.HandleFunc("/admin/events/{id}/reject", auth.RequireAdmin(h.Admin.Reject)).Methods("POST")
	api.HandleFunc("/admin/events/{id}/reopen", auth.RequireAdmin(h.Admin.Reopen)).Methods("POST")

	// Card assets
	api.HandleFunc("/admin/card-assets/upload-url", auth.RequireAdmin(h.Admin.GetCardUploadURL)).Methods("POST")
	api.HandleFunc("/admin/card-assets/{assetID}/confirm", auth.RequireAdmin(h.Admin.ConfirmCardUpload)).Methods("POST")
	api.HandleFunc("/card-assets/{assetID}/download-url", auth.Require(h.Admin.GetCardDownloadURL)).Methods("GET")
}

// RegisterMockStorageRoutes registers the mock storage HTTP endpoints
func RegisterMockStorageRoutes(router *mux.Router, mockStorage *storage.MockStorageService) {
	handler := NewCardUploadHandler(mockStorage)
	router.HandleFunc("/api/v1/upload/{token}", handler.HandleMockUpload).Methods("PUT")
	router.HandleFunc("/api/v1/download/card", handler.HandleMockDownload).Methods("GET")
}
