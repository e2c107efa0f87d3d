package service

import (
	"context"
	"fmt"
	"time"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/repository"
)

type dispatchService struct {
	eventRepo repository.EventRepository
	guestRepo repository.GuestRepository
	accessSvc AccessService
	locks     *EventLocks
}

func NewDispatchService(
	eventRepo repository.EventRepository,
	guestRepo repository.GuestRepository,
	accessSvc AccessService,
	locks *EventLocks,
) DispatchService {
	return &dispatchService{
		eventRepo: eventRepo,
		guestRepo: guestRepo,
		accessSvc: accessSvc,
		locks:     locks,
	}
}

// MarkDispatched flags a guest as having received their invitation
// message. It only does bookkeeping; composing and sending the WhatsApp
// message happens outside this engine. A second call for the same guest
// is a no-op that hands back the original timestamp, so sent totals
// never double count.
func (s *dispatchService) MarkDispatched(ctx context.Context, actorID, eventID, guestID int32) (*time.Time, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.ApprovalStatus != domain.ApprovalStatusApproved {
		// No card asset exists before approval; the host must not
		// message guests yet.
		return nil, domain.ErrEventNotReady
	}

	grant, err := s.accessSvc.ResolveRole(ctx, actorID, eventID)
	if err != nil {
		return nil, err
	}

	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest.EventID != eventID {
		return nil, domain.ErrNotFound
	}
	if !grant.CanMutateGuest(guest) {
		return nil, domain.ErrUnauthorized
	}

	if guest.WhatsappMessageSent {
		return guest.WhatsappMessageSentAt, nil
	}

	now := time.Now().UTC()
	if err := s.guestRepo.MarkDispatched(ctx, guestID, now.Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("failed to mark guest dispatched: %w", err)
	}
	return &now, nil
}
