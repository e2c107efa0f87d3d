package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MockStorageService implements card asset storage on the local
// filesystem, for running without a cloud bucket.
type MockStorageService struct {
	baseURL  string // Server URL (e.g., "http://localhost:8080")
	cardsDir string // Local directory for card images
}

// NewMockStorageService creates a new mock storage service
func NewMockStorageService(baseURL, uploadsDir string) (*MockStorageService, error) {
	cardsDir := filepath.Join(uploadsDir, "cards")
	if err := os.MkdirAll(cardsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cards directory: %w", err)
	}

	return &MockStorageService{
		baseURL:  baseURL,
		cardsDir: cardsDir,
	}, nil
}

// GeneratePresignedUploadURL generates a mock upload URL pointing to the server.
// The key travels in the query parameter so the upload handler knows where
// to save the bytes.
func (m *MockStorageService) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	uploadToken := uuid.New().String()
	uploadURL := fmt.Sprintf("%s/api/v1/upload/%s?key=%s", m.baseURL, uploadToken, key)
	return uploadURL, nil
}

// GeneratePresignedDownloadURL generates a mock download URL
func (m *MockStorageService) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	downloadURL := fmt.Sprintf("%s/api/v1/download/card?key=%s", m.baseURL, key)
	return downloadURL, nil
}

// FileExists checks if file exists in local filesystem
func (m *MockStorageService) FileExists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(filepath.Join(m.cardsDir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

// DeleteFile deletes file from local filesystem
func (m *MockStorageService) DeleteFile(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(m.cardsDir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// SaveFile saves uploaded file to local filesystem
func (m *MockStorageService) SaveFile(key string, reader io.Reader) error {
	fullPath := filepath.Join(m.cardsDir, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// ReadFile reads file from local filesystem
func (m *MockStorageService) ReadFile(key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(m.cardsDir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}
