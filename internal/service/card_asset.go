package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/repository"
	"dawati-backend/internal/storage"
)

const presignedURLExpiry = 15 * time.Minute

type cardAssetService struct {
	assetRepo repository.CardAssetRepository
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	storage   storage.StorageInterface
}

func NewCardAssetService(
	assetRepo repository.CardAssetRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	store storage.StorageInterface,
) CardAssetService {
	return &cardAssetService{
		assetRepo: assetRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		storage:   store,
	}
}

func (s *cardAssetService) GetUploadURL(ctx context.Context, adminID int32, filename, contentType string) (*domain.CardAsset, string, error) {
	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, "", err
	}
	if !admin.IsAdmin {
		return nil, "", domain.ErrUnauthorized
	}
	if !domain.AllowedCardContentTypes[contentType] {
		return nil, "", domain.NewValidationError("content_type", "card image must be JPEG or PNG")
	}

	// Random key; the original filename only contributes its extension.
	key := fmt.Sprintf("%s%s", uuid.New().String(), path.Ext(filename))

	asset := &domain.CardAsset{
		UploadedBy:  adminID,
		StorageKey:  key,
		ContentType: contentType,
		Status:      domain.CardAssetStatusPending,
	}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, "", fmt.Errorf("failed to create card asset record: %w", err)
	}

	uploadURL, err := s.storage.GeneratePresignedUploadURL(ctx, key, contentType, presignedURLExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate upload URL: %w", err)
	}
	return asset, uploadURL, nil
}

func (s *cardAssetService) ConfirmUpload(ctx context.Context, adminID, assetID int32) (*domain.CardAsset, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset.UploadedBy != adminID {
		return nil, domain.ErrUnauthorized
	}

	exists, size, err := s.storage.FileExists(ctx, asset.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check uploaded file: %w", err)
	}
	if !exists || size == 0 {
		return nil, domain.NewValidationError("asset", "no uploaded file found for this asset")
	}
	if size > domain.MaxCardAssetSizeBytes {
		// Oversized uploads are removed so a retry starts clean.
		_ = s.storage.DeleteFile(ctx, asset.StorageKey)
		return nil, domain.NewValidationError("asset", "card image exceeds the 10 MB limit")
	}

	asset.FileSizeBytes = size
	asset.Status = domain.CardAssetStatusConfirmed
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to confirm card asset: %w", err)
	}
	return asset, nil
}

func (s *cardAssetService) GetDownloadURL(ctx context.Context, actorID, assetID int32) (string, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		return "", err
	}

	// Visible to the uploader, admins, and anyone with a role on the
	// event the card is attached to.
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return "", err
	}
	authorized := actor.IsAdmin || asset.UploadedBy == actorID
	if !authorized && asset.EventID != nil {
		event, err := s.eventRepo.GetByID(ctx, *asset.EventID)
		if err != nil {
			return "", err
		}
		if event.OwnerID == actorID {
			authorized = true
		}
	}
	if !authorized {
		return "", domain.ErrUnauthorized
	}

	return s.storage.GeneratePresignedDownloadURL(ctx, asset.StorageKey, presignedURLExpiry)
}
