package repository

import (
	"context"

	"dawati-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int32) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Event, int32, error)
	ListByApprovalStatus(ctx context.Context, status domain.ApprovalStatus, page, pageSize int32) ([]domain.Event, int32, error)
	// ListPastUpcoming returns UPCOMING events whose date is strictly
	// before the given yyyy-mm-dd day. Used by the lifecycle job.
	ListPastUpcoming(ctx context.Context, before string) ([]domain.Event, error)
}

type GuestRepository interface {
	Create(ctx context.Context, guest *domain.Guest) error
	GetByID(ctx context.Context, id int32) (*domain.Guest, error)
	Update(ctx context.Context, guest *domain.Guest) error
	Delete(ctx context.Context, id int32) error
	ListByEvent(ctx context.Context, eventID int32) ([]domain.Guest, error)
	ListByAdder(ctx context.Context, eventID, userID int32) ([]domain.Guest, error)
	// SeatsUsedByAdder sums accompanying_count over the guests a given
	// user added to the event. The quota ledger is derived from this.
	SeatsUsedByAdder(ctx context.Context, eventID, userID int32) (int32, error)
	// SeatsUsedTotal sums accompanying_count over the whole roster.
	SeatsUsedTotal(ctx context.Context, eventID int32) (int32, error)
	CountDispatched(ctx context.Context, eventID int32) (int32, error)
	ExistsByPhone(ctx context.Context, eventID int32, phone string) (bool, error)
	MarkDispatched(ctx context.Context, id int32, sentAt string) error
	// ReassignAdder moves every guest a user added to another adder.
	// Used when a collaborator is removed and their guests return to
	// the owner pool.
	ReassignAdder(ctx context.Context, eventID, fromUserID, toUserID int32) error
}

type CollaboratorRepository interface {
	Create(ctx context.Context, collab *domain.Collaborator) error
	GetByID(ctx context.Context, id int32) (*domain.Collaborator, error)
	GetByEventAndUser(ctx context.Context, eventID, userID int32) (*domain.Collaborator, error)
	Update(ctx context.Context, collab *domain.Collaborator) error
	Delete(ctx context.Context, id int32) error
	ListByEvent(ctx context.Context, eventID int32) ([]domain.Collaborator, error)
	// AllocatedTotal sums allocated_quota across the event's
	// collaborators, the carve-out side of the owner's ledger.
	AllocatedTotal(ctx context.Context, eventID int32) (int32, error)
}

type CardAssetRepository interface {
	Create(ctx context.Context, asset *domain.CardAsset) error
	GetByID(ctx context.Context, id int32) (*domain.CardAsset, error)
	Update(ctx context.Context, asset *domain.CardAsset) error
	DeleteExpiredPending(ctx context.Context, before string) error
}
