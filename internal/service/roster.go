package service

import (
	"context"
	"fmt"
	"strings"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/repository"
	"dawati-backend/internal/utils"
)

type rosterService struct {
	eventRepo repository.EventRepository
	guestRepo repository.GuestRepository
	accessSvc AccessService
	ledger    *quotaLedger
	locks     *EventLocks
}

func NewRosterService(
	eventRepo repository.EventRepository,
	guestRepo repository.GuestRepository,
	collabRepo repository.CollaboratorRepository,
	accessSvc AccessService,
	locks *EventLocks,
) RosterService {
	return &rosterService{
		eventRepo: eventRepo,
		guestRepo: guestRepo,
		accessSvc: accessSvc,
		ledger:    newQuotaLedger(guestRepo, collabRepo),
		locks:     locks,
	}
}

func (s *rosterService) AddGuest(ctx context.Context, actorID, eventID int32, name, phone string, accompanyingCount int32) (*domain.Guest, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	grant, err := s.accessSvc.ResolveRole(ctx, actorID, eventID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}
	normalized, err := validateGuestPhone(phone)
	if err != nil {
		return nil, err
	}
	if err := validateAccompanyingCount(accompanyingCount); err != nil {
		return nil, err
	}

	exists, err := s.guestRepo.ExistsByPhone(ctx, eventID, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone uniqueness: %w", err)
	}
	if exists {
		return nil, domain.NewValidationError("phone", "a guest with this phone is already on the list")
	}

	if err := s.ledger.TryReserve(ctx, grant, event, accompanyingCount); err != nil {
		return nil, err
	}

	guest := &domain.Guest{
		EventID:           eventID,
		AddedByUserID:     actorID,
		Name:              name,
		Phone:             normalized,
		AccompanyingCount: accompanyingCount,
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	return guest, nil
}

func (s *rosterService) UpdateGuest(ctx context.Context, actorID, eventID, guestID int32, patch domain.GuestPatch) (*domain.Guest, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
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

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "must not be empty")
		}
		guest.Name = name
	}
	if patch.Phone != nil {
		normalized, err := validateGuestPhone(*patch.Phone)
		if err != nil {
			return nil, err
		}
		if normalized != guest.Phone {
			exists, err := s.guestRepo.ExistsByPhone(ctx, eventID, normalized)
			if err != nil {
				return nil, fmt.Errorf("failed to check phone uniqueness: %w", err)
			}
			if exists {
				return nil, domain.NewValidationError("phone", "a guest with this phone is already on the list")
			}
			guest.Phone = normalized
		}
	}
	if patch.AccompanyingCount != nil {
		newCount := *patch.AccompanyingCount
		if err := validateAccompanyingCount(newCount); err != nil {
			return nil, err
		}
		// Reserve only the delta: the old count already occupies the
		// ledger. Decreases pass unconditionally.
		if err := s.ledger.TryReserve(ctx, grant, event, newCount-guest.AccompanyingCount); err != nil {
			return nil, err
		}
		guest.AccompanyingCount = newCount
	}

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}
	return guest, nil
}

// RemoveGuest always succeeds structurally for the actor who added the
// guest. A dispatched guest's removal is the "guest withdrew" case: the
// vacated seats become available to a replacement immediately.
func (s *rosterService) RemoveGuest(ctx context.Context, actorID, eventID, guestID int32) error {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return err
	}
	grant, err := s.accessSvc.ResolveRole(ctx, actorID, eventID)
	if err != nil {
		return err
	}

	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return err
	}
	if guest.EventID != eventID {
		return domain.ErrNotFound
	}
	if !grant.CanMutateGuest(guest) {
		return domain.ErrUnauthorized
	}

	if err := s.guestRepo.Delete(ctx, guestID); err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}
	return nil
}

func (s *rosterService) ListGuests(ctx context.Context, actorID, eventID int32) ([]domain.Guest, error) {
	grant, err := s.accessSvc.ResolveRole(ctx, actorID, eventID)
	if err != nil {
		return nil, err
	}
	if grant.IsOwner() {
		return s.guestRepo.ListByEvent(ctx, eventID)
	}
	return s.guestRepo.ListByAdder(ctx, eventID, actorID)
}

func validateGuestPhone(phone string) (string, error) {
	normalized := utils.NormalizePhone(phone)
	if _, err := utils.ValidatePhone(normalized); err != nil {
		return "", domain.NewValidationError("phone", err.Error())
	}
	return normalized, nil
}

func validateAccompanyingCount(count int32) error {
	if count < domain.MinAccompanyingCount || count > domain.MaxAccompanyingCount {
		return domain.NewValidationError("accompanying_count",
			fmt.Sprintf("must be between %d and %d", domain.MinAccompanyingCount, domain.MaxAccompanyingCount))
	}
	return nil
}
