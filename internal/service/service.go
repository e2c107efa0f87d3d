package service

import (
	"context"
	"time"

	"dawati-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type EventService interface {
	// CreateEvent is called by the payment collaborator once payment
	// clears. A zero quota falls back to the tier default.
	CreateEvent(ctx context.Context, ownerID int32, packageType domain.PackageType, totalInviteQuota int32, title, eventDate string) (*domain.Event, error)
	GetEvent(ctx context.Context, actorID, eventID int32) (*domain.Event, error)
	GetEventSummary(ctx context.Context, actorID, eventID int32) (*domain.EventSummary, error)
	ListMyEvents(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Event, int32, error)
	CancelEvent(ctx context.Context, actorID, eventID int32) (*domain.Event, error)
	// MarkPastEventsDone flips UPCOMING events dated before today to
	// DONE. Run by the scheduler.
	MarkPastEventsDone(ctx context.Context) (int32, error)
}

type AccessService interface {
	ResolveRole(ctx context.Context, userID, eventID int32) (*domain.RoleGrant, error)
	AddCollaborator(ctx context.Context, ownerID, eventID, userID, allocatedQuota int32) (*domain.Collaborator, error)
	UpdateAllocation(ctx context.Context, ownerID, eventID, collaboratorID, allocatedQuota int32) (*domain.Collaborator, error)
	RemoveCollaborator(ctx context.Context, ownerID, eventID, collaboratorID int32) error
	ListCollaborators(ctx context.Context, ownerID, eventID int32) ([]domain.Collaborator, error)
}

type RosterService interface {
	AddGuest(ctx context.Context, actorID, eventID int32, name, phone string, accompanyingCount int32) (*domain.Guest, error)
	UpdateGuest(ctx context.Context, actorID, eventID, guestID int32, patch domain.GuestPatch) (*domain.Guest, error)
	RemoveGuest(ctx context.Context, actorID, eventID, guestID int32) error
	// ListGuests returns the whole roster for the owner and only the
	// actor's own entries for a collaborator.
	ListGuests(ctx context.Context, actorID, eventID int32) ([]domain.Guest, error)
}

type DispatchService interface {
	// MarkDispatched records that the invitation message was handed to
	// the guest. Idempotent: a repeat call returns the original
	// timestamp without error.
	MarkDispatched(ctx context.Context, actorID, eventID, guestID int32) (*time.Time, error)
}

// BulkApprovalItem pairs an event with the card asset backing its
// approval.
type BulkApprovalItem struct {
	EventID     int32 `json:"event_id"`
	CardAssetID int32 `json:"card_asset_id"`
}

// BulkApprovalResult is the per-event outcome of a bulk approval.
type BulkApprovalResult struct {
	EventID int32  `json:"event_id"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

type ApprovalService interface {
	Approve(ctx context.Context, adminID, eventID, cardAssetID int32, notes string) (*domain.Event, error)
	Reject(ctx context.Context, adminID, eventID int32, reason string) (*domain.Event, error)
	// BulkApprove applies Approve per item independently; one failure
	// never rolls back the others.
	BulkApprove(ctx context.Context, adminID int32, items []BulkApprovalItem, notes string) []BulkApprovalResult
	// Reopen moves a rejected event back to pending for resubmission.
	Reopen(ctx context.Context, adminID, eventID int32) (*domain.Event, error)
	ListPendingEvents(ctx context.Context, page, pageSize int32) ([]domain.Event, int32, error)
}

type CardAssetService interface {
	// GetUploadURL issues a presigned upload target for a card image.
	GetUploadURL(ctx context.Context, adminID int32, filename, contentType string) (*domain.CardAsset, string, error)
	// ConfirmUpload verifies the bytes landed in storage and are within
	// the size cap before the asset may back an approval.
	ConfirmUpload(ctx context.Context, adminID, assetID int32) (*domain.CardAsset, error)
	GetDownloadURL(ctx context.Context, actorID, assetID int32) (string, error)
}

type EmailService interface {
	SendEventApprovedNotification(ctx context.Context, email, name, eventTitle string) error
	SendEventRejectedNotification(ctx context.Context, email, name, eventTitle, reason string) error
	SendOutreachReminder(ctx context.Context, email, name, eventTitle string, undispatched int32) error
}
