package service

import (
	"context"
	"fmt"
	"strings"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/logger"
	"dawati-backend/internal/repository"
)

type approvalService struct {
	eventRepo repository.EventRepository
	assetRepo repository.CardAssetRepository
	userRepo  repository.UserRepository
	emailSvc  EmailService
	locks     *EventLocks
}

func NewApprovalService(
	eventRepo repository.EventRepository,
	assetRepo repository.CardAssetRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	locks *EventLocks,
) ApprovalService {
	return &approvalService{
		eventRepo: eventRepo,
		assetRepo: assetRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
		locks:     locks,
	}
}

func (s *approvalService) Approve(ctx context.Context, adminID, eventID, cardAssetID int32, notes string) (*domain.Event, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.ApprovalStatus != domain.ApprovalStatusPending {
		return nil, domain.ErrInvalidState
	}

	// The invitation card is mandatory: an approved event with no card
	// would let the host message guests with nothing to attach.
	if cardAssetID == 0 {
		return nil, domain.NewValidationError("card_asset_id", "approval requires an invitation card image")
	}
	asset, err := s.assetRepo.GetByID(ctx, cardAssetID)
	if err != nil {
		return nil, err
	}
	if asset.Status != domain.CardAssetStatusConfirmed {
		return nil, domain.NewValidationError("card_asset_id", "card image upload was not confirmed")
	}
	if !domain.AllowedCardContentTypes[asset.ContentType] {
		return nil, domain.NewValidationError("card_asset_id", "card image must be JPEG or PNG")
	}
	if asset.FileSizeBytes <= 0 || asset.FileSizeBytes > domain.MaxCardAssetSizeBytes {
		return nil, domain.NewValidationError("card_asset_id", "card image exceeds the size limit")
	}
	if asset.EventID != nil && *asset.EventID != eventID {
		return nil, domain.NewValidationError("card_asset_id", "card image is attached to another event")
	}

	asset.EventID = &eventID
	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to attach card asset: %w", err)
	}

	event.ApprovalStatus = domain.ApprovalStatusApproved
	event.CardAssetID = &asset.ID
	event.AdminNotes = notes
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to approve event: %w", err)
	}

	s.notifyOwner(ctx, event, "")
	return event, nil
}

func (s *approvalService) Reject(ctx context.Context, adminID, eventID int32, reason string) (*domain.Event, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.NewValidationError("reason", "rejection requires a reason")
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.ApprovalStatus != domain.ApprovalStatusPending {
		return nil, domain.ErrInvalidState
	}

	event.ApprovalStatus = domain.ApprovalStatusRejected
	event.AdminNotes = reason
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to reject event: %w", err)
	}

	s.notifyOwner(ctx, event, reason)
	return event, nil
}

func (s *approvalService) BulkApprove(ctx context.Context, adminID int32, items []BulkApprovalItem, notes string) []BulkApprovalResult {
	results := make([]BulkApprovalResult, 0, len(items))
	for _, item := range items {
		_, err := s.Approve(ctx, adminID, item.EventID, item.CardAssetID, notes)
		result := BulkApprovalResult{EventID: item.EventID, OK: err == nil}
		if err != nil {
			result.Error = err.Error()
		}
		results = append(results, result)
	}
	return results
}

// Reopen returns a rejected event to the review queue after the host
// has fixed whatever the rejection named. Approved events stay approved.
func (s *approvalService) Reopen(ctx context.Context, adminID, eventID int32) (*domain.Event, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.ApprovalStatus != domain.ApprovalStatusRejected {
		return nil, domain.ErrInvalidState
	}

	event.ApprovalStatus = domain.ApprovalStatusPending
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to reopen event: %w", err)
	}
	return event, nil
}

func (s *approvalService) ListPendingEvents(ctx context.Context, page, pageSize int32) ([]domain.Event, int32, error) {
	return s.eventRepo.ListByApprovalStatus(ctx, domain.ApprovalStatusPending, page, pageSize)
}

func (s *approvalService) requireAdmin(ctx context.Context, adminID int32) error {
	admin, err := s.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if !admin.IsAdmin {
		return domain.ErrUnauthorized
	}
	return nil
}

// notifyOwner emails the host about the review outcome. Best effort:
// a mail failure never rolls back an approval decision.
func (s *approvalService) notifyOwner(ctx context.Context, event *domain.Event, rejectReason string) {
	owner, err := s.userRepo.GetByID(ctx, event.OwnerID)
	if err != nil {
		logger.Warn("could not load event owner for notification", "event_id", event.ID, "error", err)
		return
	}
	if rejectReason == "" {
		err = s.emailSvc.SendEventApprovedNotification(ctx, owner.Email, owner.Name, event.Title)
	} else {
		err = s.emailSvc.SendEventRejectedNotification(ctx, owner.Email, owner.Name, event.Title, rejectReason)
	}
	if err != nil {
		logger.Warn("failed to send review outcome email", "event_id", event.ID, "error", err)
	}
}
