package service

import (
	"context"
	"fmt"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/repository"
)

// quotaLedger computes remaining invitation capacity as a derived view
// over the guest and collaborator tables. Nothing here is cached or
// counted up and down; every check recomputes from committed rows, so a
// removed guest frees capacity with no release call.
type quotaLedger struct {
	guestRepo  repository.GuestRepository
	collabRepo repository.CollaboratorRepository
}

func newQuotaLedger(guestRepo repository.GuestRepository, collabRepo repository.CollaboratorRepository) *quotaLedger {
	return &quotaLedger{guestRepo: guestRepo, collabRepo: collabRepo}
}

// OwnerRemaining is totalInviteQuota minus collaborator carve-outs minus
// the seats the owner's own guests consume.
func (l *quotaLedger) OwnerRemaining(ctx context.Context, event *domain.Event) (int32, error) {
	allocated, err := l.collabRepo.AllocatedTotal(ctx, event.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum collaborator allocations: %w", err)
	}
	used, err := l.guestRepo.SeatsUsedByAdder(ctx, event.ID, event.OwnerID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum owner guest seats: %w", err)
	}
	return event.TotalInviteQuota - allocated - used, nil
}

// CollaboratorRemaining is the collaborator's allocation minus the seats
// their guests consume.
func (l *quotaLedger) CollaboratorRemaining(ctx context.Context, eventID int32, collab *domain.Collaborator) (int32, error) {
	used, err := l.guestRepo.SeatsUsedByAdder(ctx, eventID, collab.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum collaborator guest seats: %w", err)
	}
	return collab.AllocatedQuota - used, nil
}

// Remaining resolves the capacity at the grant's scope.
func (l *quotaLedger) Remaining(ctx context.Context, grant *domain.RoleGrant, event *domain.Event) (int32, error) {
	if grant.IsOwner() {
		return l.OwnerRemaining(ctx, event)
	}
	used, err := l.guestRepo.SeatsUsedByAdder(ctx, event.ID, grant.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum collaborator guest seats: %w", err)
	}
	return grant.AllocatedQuota - used, nil
}

// TryReserve accepts a seat delta against the actor's remaining
// capacity. Negative deltas (guest removed, party shrunk) always pass;
// the derived view picks them up on the next read. Callers must hold the
// event lock so the check and the commit are serialized per event.
func (l *quotaLedger) TryReserve(ctx context.Context, grant *domain.RoleGrant, event *domain.Event, delta int32) error {
	if delta <= 0 {
		return nil
	}
	remaining, err := l.Remaining(ctx, grant, event)
	if err != nil {
		return err
	}
	if delta > remaining {
		return &domain.QuotaExceededError{Remaining: remaining, Requested: delta}
	}
	return nil
}
