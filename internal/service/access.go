package service

import (
	"context"
	"errors"
	"fmt"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/repository"
)

type accessService struct {
	eventRepo  repository.EventRepository
	collabRepo repository.CollaboratorRepository
	guestRepo  repository.GuestRepository
	userRepo   repository.UserRepository
	ledger     *quotaLedger
	locks      *EventLocks
}

func NewAccessService(
	eventRepo repository.EventRepository,
	collabRepo repository.CollaboratorRepository,
	guestRepo repository.GuestRepository,
	userRepo repository.UserRepository,
	locks *EventLocks,
) AccessService {
	return &accessService{
		eventRepo:  eventRepo,
		collabRepo: collabRepo,
		guestRepo:  guestRepo,
		userRepo:   userRepo,
		ledger:     newQuotaLedger(guestRepo, collabRepo),
		locks:      locks,
	}
}

func (s *accessService) ResolveRole(ctx context.Context, userID, eventID int32) (*domain.RoleGrant, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.resolveRoleForEvent(ctx, userID, event)
}

// resolveRoleForEvent does the actual resolution given a loaded event;
// other services call this through resolveRole to avoid a double fetch.
func (s *accessService) resolveRoleForEvent(ctx context.Context, userID int32, event *domain.Event) (*domain.RoleGrant, error) {
	if event.OwnerID == userID {
		return &domain.RoleGrant{Role: domain.RoleOwner, UserID: userID}, nil
	}

	collab, err := s.collabRepo.GetByEventAndUser(ctx, event.ID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve collaborator: %w", err)
	}

	return &domain.RoleGrant{
		Role:           domain.RoleCollaborator,
		UserID:         userID,
		CollaboratorID: collab.ID,
		AllocatedQuota: collab.AllocatedQuota,
		UsedQuota:      collab.UsedQuota,
	}, nil
}

func (s *accessService) AddCollaborator(ctx context.Context, ownerID, eventID, userID, allocatedQuota int32) (*domain.Collaborator, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.managedEvent(ctx, ownerID, eventID)
	if err != nil {
		return nil, err
	}
	if allocatedQuota < 0 {
		return nil, domain.NewValidationError("allocated_quota", "must not be negative")
	}
	if userID == event.OwnerID {
		return nil, domain.NewValidationError("user_id", "owner cannot be a collaborator of their own event")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.collabRepo.GetByEventAndUser(ctx, eventID, userID); err == nil {
		return nil, domain.NewValidationError("user_id", "user is already a collaborator on this event")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// The allocation is a reservation carved out of the owner's unused pool.
	grant := &domain.RoleGrant{Role: domain.RoleOwner, UserID: ownerID}
	if err := s.ledger.TryReserve(ctx, grant, event, allocatedQuota); err != nil {
		return nil, err
	}

	collab := &domain.Collaborator{
		EventID:        eventID,
		UserID:         userID,
		AllocatedQuota: allocatedQuota,
	}
	if err := s.collabRepo.Create(ctx, collab); err != nil {
		return nil, fmt.Errorf("failed to create collaborator: %w", err)
	}
	return collab, nil
}

func (s *accessService) UpdateAllocation(ctx context.Context, ownerID, eventID, collaboratorID, allocatedQuota int32) (*domain.Collaborator, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.managedEvent(ctx, ownerID, eventID)
	if err != nil {
		return nil, err
	}
	if allocatedQuota < 0 {
		return nil, domain.NewValidationError("allocated_quota", "must not be negative")
	}

	collab, err := s.collabRepo.GetByID(ctx, collaboratorID)
	if err != nil {
		return nil, err
	}
	if collab.EventID != eventID {
		return nil, domain.ErrNotFound
	}

	// Shrinking below what the collaborator's guests already consume
	// would leave their ledger negative; refuse rather than truncate.
	used, err := s.ledger.CollaboratorRemaining(ctx, eventID, collab)
	if err != nil {
		return nil, err
	}
	usedQuota := collab.AllocatedQuota - used
	if allocatedQuota < usedQuota {
		return nil, &domain.QuotaExceededError{Remaining: usedQuota, Requested: allocatedQuota}
	}

	// Growth draws from the owner's unused pool.
	grant := &domain.RoleGrant{Role: domain.RoleOwner, UserID: ownerID}
	if err := s.ledger.TryReserve(ctx, grant, event, allocatedQuota-collab.AllocatedQuota); err != nil {
		return nil, err
	}

	collab.AllocatedQuota = allocatedQuota
	if err := s.collabRepo.Update(ctx, collab); err != nil {
		return nil, fmt.Errorf("failed to update allocation: %w", err)
	}
	collab.UsedQuota = usedQuota
	return collab, nil
}

// RemoveCollaborator reassigns the collaborator's guests to the owner
// pool. The freed allocation returns to the owner at the same moment
// the guests start drawing on it, so owner remaining never dips below
// zero.
func (s *accessService) RemoveCollaborator(ctx context.Context, ownerID, eventID, collaboratorID int32) error {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.managedEvent(ctx, ownerID, eventID)
	if err != nil {
		return err
	}

	collab, err := s.collabRepo.GetByID(ctx, collaboratorID)
	if err != nil {
		return err
	}
	if collab.EventID != eventID {
		return domain.ErrNotFound
	}

	if err := s.guestRepo.ReassignAdder(ctx, eventID, collab.UserID, event.OwnerID); err != nil {
		return fmt.Errorf("failed to reassign guests to owner: %w", err)
	}
	if err := s.collabRepo.Delete(ctx, collaboratorID); err != nil {
		return fmt.Errorf("failed to delete collaborator: %w", err)
	}
	return nil
}

func (s *accessService) ListCollaborators(ctx context.Context, ownerID, eventID int32) ([]domain.Collaborator, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != ownerID {
		return nil, domain.ErrUnauthorized
	}
	return s.collabRepo.ListByEvent(ctx, eventID)
}

// managedEvent loads the event and checks the preconditions for any
// collaborator-management action: the actor owns the event, the tier
// allows collaboration, and the event has not been rejected.
func (s *accessService) managedEvent(ctx context.Context, ownerID, eventID int32) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != ownerID {
		return nil, domain.ErrUnauthorized
	}
	if !event.PackageType.AllowsCollaboration() {
		return nil, domain.ErrPackageTierUnsupported
	}
	if event.ApprovalStatus == domain.ApprovalStatusRejected {
		return nil, domain.ErrInvalidState
	}
	return event, nil
}
