package service

import (
	"context"
	"fmt"
	"time"

	"dawati-backend/internal/config"
	"dawati-backend/internal/domain"
	"dawati-backend/internal/logger"
	"dawati-backend/internal/repository"
)

type eventService struct {
	eventRepo  repository.EventRepository
	guestRepo  repository.GuestRepository
	collabRepo repository.CollaboratorRepository
	accessSvc  AccessService
	ledger     *quotaLedger
	packages   config.PackagesConfig
}

func NewEventService(
	eventRepo repository.EventRepository,
	guestRepo repository.GuestRepository,
	collabRepo repository.CollaboratorRepository,
	accessSvc AccessService,
	packages config.PackagesConfig,
) EventService {
	return &eventService{
		eventRepo:  eventRepo,
		guestRepo:  guestRepo,
		collabRepo: collabRepo,
		accessSvc:  accessSvc,
		ledger:     newQuotaLedger(guestRepo, collabRepo),
		packages:   packages,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, ownerID int32, packageType domain.PackageType, totalInviteQuota int32, title, eventDate string) (*domain.Event, error) {
	switch packageType {
	case domain.PackageTypeClassic, domain.PackageTypePremium, domain.PackageTypeVIP:
	default:
		return nil, domain.NewValidationError("package_type", "unknown package tier")
	}
	if totalInviteQuota < 0 {
		return nil, domain.NewValidationError("total_invite_quota", "must not be negative")
	}
	if totalInviteQuota == 0 {
		totalInviteQuota = s.defaultQuota(packageType)
	}
	if title == "" {
		return nil, domain.NewValidationError("title", "must not be empty")
	}
	if _, err := time.Parse("2006-01-02", eventDate); err != nil {
		return nil, domain.NewValidationError("event_date", "must be a yyyy-mm-dd date")
	}

	event := &domain.Event{
		OwnerID:          ownerID,
		Title:            title,
		PackageType:      packageType,
		TotalInviteQuota: totalInviteQuota,
		ApprovalStatus:   domain.ApprovalStatusPending,
		Status:           domain.EventStatusUpcoming,
		EventDate:        eventDate,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	logger.Info("event created", "event_id", event.ID, "owner_id", ownerID, "package", packageType, "quota", totalInviteQuota)
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, actorID, eventID int32) (*domain.Event, error) {
	// Resolving the role doubles as the visibility check: owners and
	// collaborators see the event, everyone else gets unauthorized.
	if _, err := s.accessSvc.ResolveRole(ctx, actorID, eventID); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByID(ctx, eventID)
}

func (s *eventService) GetEventSummary(ctx context.Context, actorID, eventID int32) (*domain.EventSummary, error) {
	grant, err := s.accessSvc.ResolveRole(ctx, actorID, eventID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	summary := &domain.EventSummary{Event: *event}

	guests, err := s.guestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	summary.GuestCount = int32(len(guests))

	summary.SeatsUsed, err = s.guestRepo.SeatsUsedTotal(ctx, eventID)
	if err != nil {
		return nil, err
	}
	summary.SeatsAllocated, err = s.collabRepo.AllocatedTotal(ctx, eventID)
	if err != nil {
		return nil, err
	}
	summary.OwnerRemaining, err = s.ledger.OwnerRemaining(ctx, event)
	if err != nil {
		return nil, err
	}
	summary.DispatchedCount, err = s.guestRepo.CountDispatched(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if grant.IsOwner() {
		summary.Collaborators, err = s.collabRepo.ListByEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
	}
	return summary, nil
}

func (s *eventService) ListMyEvents(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Event, int32, error) {
	return s.eventRepo.ListByOwner(ctx, ownerID, page, pageSize)
}

func (s *eventService) CancelEvent(ctx context.Context, actorID, eventID int32) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != actorID {
		return nil, domain.ErrUnauthorized
	}
	if event.Status != domain.EventStatusUpcoming {
		return nil, domain.ErrInvalidState
	}

	event.Status = domain.EventStatusCancelled
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to cancel event: %w", err)
	}
	return event, nil
}

func (s *eventService) MarkPastEventsDone(ctx context.Context) (int32, error) {
	today := time.Now().UTC().Format("2006-01-02")
	events, err := s.eventRepo.ListPastUpcoming(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to list past events: %w", err)
	}

	var done int32
	for i := range events {
		event := &events[i]
		event.Status = domain.EventStatusDone
		if err := s.eventRepo.Update(ctx, event); err != nil {
			logger.Error("failed to mark event done", "event_id", event.ID, "error", err)
			continue
		}
		done++
	}
	return done, nil
}

func (s *eventService) defaultQuota(packageType domain.PackageType) int32 {
	switch packageType {
	case domain.PackageTypeVIP:
		return s.packages.VIPQuota
	case domain.PackageTypePremium:
		return s.packages.PremiumQuota
	default:
		return s.packages.ClassicQuota
	}
}
