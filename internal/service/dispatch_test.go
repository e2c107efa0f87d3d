package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/service"
)

type dispatchFixture struct {
	eventRepo  *MockEventRepo
	guestRepo  *MockGuestRepo
	collabRepo *MockCollaboratorRepo
	userRepo   *MockUserRepo
	svc        service.DispatchService
}

func newDispatchFixture() *dispatchFixture {
	f := &dispatchFixture{
		eventRepo:  new(MockEventRepo),
		guestRepo:  new(MockGuestRepo),
		collabRepo: new(MockCollaboratorRepo),
		userRepo:   new(MockUserRepo),
	}
	locks := service.NewEventLocks()
	accessSvc := service.NewAccessService(f.eventRepo, f.collabRepo, f.guestRepo, f.userRepo, locks)
	f.svc = service.NewDispatchService(f.eventRepo, f.guestRepo, accessSvc, locks)
	return f
}

func TestDispatchService_MarkDispatched(t *testing.T) {
	ctx := context.Background()
	ownerID := int32(1)
	eventID := int32(10)

	approved := &domain.Event{
		ID:               eventID,
		OwnerID:          ownerID,
		PackageType:      domain.PackageTypePremium,
		TotalInviteQuota: 300,
		ApprovalStatus:   domain.ApprovalStatusApproved,
	}

	t.Run("Success", func(t *testing.T) {
		f := newDispatchFixture()
		guest := &domain.Guest{ID: 5, EventID: eventID, AddedByUserID: ownerID}

		f.eventRepo.On("GetByID", ctx, eventID).Return(approved, nil)
		f.guestRepo.On("GetByID", ctx, int32(5)).Return(guest, nil)
		f.guestRepo.On("MarkDispatched", ctx, int32(5), mock.AnythingOfType("string")).Return(nil)

		sentAt, err := f.svc.MarkDispatched(ctx, ownerID, eventID, 5)
		assert.NoError(t, err)
		assert.NotNil(t, sentAt)
		f.guestRepo.AssertCalled(t, "MarkDispatched", ctx, int32(5), mock.AnythingOfType("string"))
	})

	t.Run("Repeat Call Returns Original Timestamp", func(t *testing.T) {
		f := newDispatchFixture()
		firstSent := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
		guest := &domain.Guest{
			ID:                    5,
			EventID:               eventID,
			AddedByUserID:         ownerID,
			WhatsappMessageSent:   true,
			WhatsappMessageSentAt: &firstSent,
		}

		f.eventRepo.On("GetByID", ctx, eventID).Return(approved, nil)
		f.guestRepo.On("GetByID", ctx, int32(5)).Return(guest, nil)

		sentAt, err := f.svc.MarkDispatched(ctx, ownerID, eventID, 5)
		assert.NoError(t, err)
		assert.Equal(t, firstSent, *sentAt)
		f.guestRepo.AssertNotCalled(t, "MarkDispatched", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unapproved Event Is Not Ready", func(t *testing.T) {
		f := newDispatchFixture()
		pending := &domain.Event{ID: eventID, OwnerID: ownerID, ApprovalStatus: domain.ApprovalStatusPending}
		f.eventRepo.On("GetByID", ctx, eventID).Return(pending, nil)

		_, err := f.svc.MarkDispatched(ctx, ownerID, eventID, 5)
		assert.ErrorIs(t, err, domain.ErrEventNotReady)
	})

	t.Run("Collaborator Cannot Dispatch Owner Guest", func(t *testing.T) {
		f := newDispatchFixture()
		collabUserID := int32(2)
		collab := &domain.Collaborator{ID: 7, EventID: eventID, UserID: collabUserID, AllocatedQuota: 20}
		guest := &domain.Guest{ID: 5, EventID: eventID, AddedByUserID: ownerID}

		f.eventRepo.On("GetByID", ctx, eventID).Return(approved, nil)
		f.collabRepo.On("GetByEventAndUser", ctx, eventID, collabUserID).Return(collab, nil)
		f.guestRepo.On("GetByID", ctx, int32(5)).Return(guest, nil)

		_, err := f.svc.MarkDispatched(ctx, collabUserID, eventID, 5)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
