package http

import (
	"io"
	"net/http"
	"path/filepath"

	"dawati-backend/internal/storage"
)

// CardUploadHandler serves the mock-storage presigned URLs: PUT uploads
// land on the local filesystem, GET streams them back.
type CardUploadHandler struct {
	mockStorage *storage.MockStorageService
}

func NewCardUploadHandler(mockStorage *storage.MockStorageService) *CardUploadHandler {
	return &CardUploadHandler{mockStorage: mockStorage}
}

// HandleMockUpload handles HTTP PUT requests to mock presigned URLs
func (h *CardUploadHandler) HandleMockUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}

	if err := h.mockStorage.SaveFile(key, r.Body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	// Mimic an S3-style response
	w.Header().Set("ETag", `"mock-etag-success"`)
	w.WriteHeader(http.StatusOK)
}

// HandleMockDownload handles HTTP GET requests to download card images
func (h *CardUploadHandler) HandleMockDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.mockStorage.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
