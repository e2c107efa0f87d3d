package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"dawati-backend/internal/domain"
	"dawati-backend/internal/service"
)

type approvalFixture struct {
	eventRepo *MockEventRepo
	assetRepo *MockCardAssetRepo
	userRepo  *MockUserRepo
	emailSvc  *MockEmailService
	svc       service.ApprovalService
}

func newApprovalFixture() *approvalFixture {
	f := &approvalFixture{
		eventRepo: new(MockEventRepo),
		assetRepo: new(MockCardAssetRepo),
		userRepo:  new(MockUserRepo),
		emailSvc:  new(MockEmailService),
	}
	f.svc = service.NewApprovalService(f.eventRepo, f.assetRepo, f.userRepo, f.emailSvc, service.NewEventLocks())
	return f
}

func (f *approvalFixture) admin(ctx context.Context, id int32) {
	f.userRepo.On("GetByID", ctx, id).Return(&domain.User{ID: id, IsAdmin: true, Email: "admin@dawati.app", Name: "Reviewer"}, nil)
}

func pendingEvent(id, ownerID int32) *domain.Event {
	return &domain.Event{
		ID:               id,
		OwnerID:          ownerID,
		Title:            "Noor & Hamad",
		PackageType:      domain.PackageTypePremium,
		TotalInviteQuota: 300,
		ApprovalStatus:   domain.ApprovalStatusPending,
		Status:           domain.EventStatusUpcoming,
	}
}

func confirmedAsset(id int32) *domain.CardAsset {
	return &domain.CardAsset{
		ID:            id,
		UploadedBy:    100,
		StorageKey:    "cards/abc.png",
		ContentType:   "image/png",
		FileSizeBytes: 512 * 1024,
		Status:        domain.CardAssetStatusConfirmed,
	}
}

func TestApprovalService_Approve(t *testing.T) {
	ctx := context.Background()
	adminID := int32(100)
	eventID := int32(10)

	t.Run("Success", func(t *testing.T) {
		f := newApprovalFixture()
		event := pendingEvent(eventID, 1)
		asset := confirmedAsset(5)

		f.admin(ctx, adminID)
		f.eventRepo.On("GetByID", ctx, eventID).Return(event, nil)
		f.assetRepo.On("GetByID", ctx, int32(5)).Return(asset, nil)
		f.assetRepo.On("Update", ctx, mock.AnythingOfType("*domain.CardAsset")).Return(nil)
		f.eventRepo.On("Update", ctx, mock.AnythingOfType("*domain.Event")).Return(nil)
		f.userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "host@test.com", Name: "Host"}, nil)
		f.emailSvc.On("SendEventApprovedNotification", ctx, "host@test.com", "Host", "Noor & Hamad").Return(nil)

		approved, err := f.svc.Approve(ctx, adminID, eventID, 5, "looks good")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusApproved, approved.ApprovalStatus)
		assert.NotNil(t, approved.CardAssetID)
		assert.Equal(t, int32(5), *approved.CardAssetID)
		assert.Equal(t, "looks good", approved.AdminNotes)
		assert.NotNil(t, asset.EventID)
		assert.Equal(t, eventID, *asset.EventID)
		f.emailSvc.AssertExpectations(t)
	})

	t.Run("Requires A Card Asset", func(t *testing.T) {
		f := newApprovalFixture()
		f.admin(ctx, adminID)
		f.eventRepo.On("GetByID", ctx, eventID).Return(pendingEvent(eventID, 1), nil)

		_, err := f.svc.Approve(ctx, adminID, eventID, 0, "")
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Unconfirmed Asset Is Refused", func(t *testing.T) {
		f := newApprovalFixture()
		asset := confirmedAsset(5)
		asset.Status = domain.CardAssetStatusPending

		f.admin(ctx, adminID)
		f.eventRepo.On("GetByID", ctx, eventID).Return(pendingEvent(eventID, 1), nil)
		f.assetRepo.On("GetByID", ctx, int32(5)).Return(asset, nil)

		_, err := f.svc.Approve(ctx, adminID, eventID, 5, "")
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Asset Attached To Another Event", func(t *testing.T) {
		f := newApprovalFixture()
		asset := confirmedAsset(5)
		other := int32(99)
		asset.EventID = &other

		f.admin(ctx, adminID)
		f.eventRepo.On("GetByID", ctx, eventID).Return(pendingEvent(eventID, 1), nil)
		f.assetRepo.On("GetByID", ctx, int32(5)).Return(asset, nil)

		_, err := f.svc.Approve(ctx, adminID, eventID, 5, "")
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("Already Approved", func(t *testing.T) {
		f := newApprovalFixture()
		event := pendingEvent(eventID, 1)
		event.ApprovalStatus = domain.ApprovalStatusApproved

		f.admin(ctx, adminID)
		f.eventRepo.On("GetByID", ctx, eventID).Return(event, nil)

		_, err := f.svc.Approve(ctx, adminID, eventID, 5, "")
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("Non Admin Is Unauthorized", func(t *testing.T) {
		f := newApprovalFixture()
		f.userRepo.On("GetByID", ctx, int32(50)).Return(&domain.User{ID: 50, IsAdmin: false}, nil)

		_, err := f.svc.Approve(ctx, int32(50), eventID, 5, "")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Mail Failure Does Not Roll Back", func(t *testing.T) {
		f := newApprovalFixture()
		event := pendingEvent(eventID, 1)

		f.admin(ctx, adminID)
		f.eventRepo.On("GetByID", ctx, eventID).Return(event, nil)
		f.assetRepo.On("GetByID", ctx, int32(5)).Return(confirmedAsset(5), nil)
		f.assetRepo.On("Update", ctx, mock.AnythingOfType("*domain.CardAsset")).Return(nil)
		f.eventRepo.On("Update", ctx, mock.AnythingOfType("*domain.Event")).Return(nil)
		f.userRepo.On("GetByID", ctx, int32(1)).Return(nil, domain.ErrNotFound)

		approved, err := f.svc.Approve(ctx, adminID, eventID, 5, "")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusApproved, approved.ApprovalStatus)
	})
}

func TestApprovalService_Reject(t *testing.T) {
	ctx := context.Background()
	adminID := int32(100)
	eventID := int32(10)

	t.Run("Success", func(t *testing.T) {
		f := newApprovalFixture()
		event := pendingEvent(eventID, 1)

		f.admin(ctx, adminID)
		f.eventRepo.On("GetByID", ctx, eventID).Return(event, nil)
		f.eventRepo.On("Update", ctx, mock.AnythingOfType("*domain.Event")).Return(nil)
		f.userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "host@test.com", Name: "Host"}, nil)
		f.emailSvc.On("SendEventRejectedNotification", ctx, "host@test.com", "Host", "Noor & Hamad", "card artwork missing").Return(nil)

		rejected, err := f.svc.Reject(ctx, adminID, eventID, "card artwork missing")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusRejected, rejected.ApprovalStatus)
		assert.Equal(t, "card artwork missing", rejected.AdminNotes)
	})

	t.Run("Reason Is Mandatory", func(t *testing.T) {
		f := newApprovalFixture()
		f.admin(ctx, adminID)

		_, err := f.svc.Reject(ctx, adminID, eventID, "   ")
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestApprovalService_BulkApprove(t *testing.T) {
	ctx := context.Background()
	adminID := int32(100)

	f := newApprovalFixture()
	f.admin(ctx, adminID)

	good := pendingEvent(10, 1)
	alreadyDone := pendingEvent(11, 1)
	alreadyDone.ApprovalStatus = domain.ApprovalStatusApproved

	f.eventRepo.On("GetByID", ctx, int32(10)).Return(good, nil)
	f.eventRepo.On("GetByID", ctx, int32(11)).Return(alreadyDone, nil)
	f.assetRepo.On("GetByID", ctx, int32(5)).Return(confirmedAsset(5), nil)
	f.assetRepo.On("Update", ctx, mock.AnythingOfType("*domain.CardAsset")).Return(nil)
	f.eventRepo.On("Update", ctx, mock.AnythingOfType("*domain.Event")).Return(nil)
	f.userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Email: "host@test.com", Name: "Host"}, nil)
	f.emailSvc.On("SendEventApprovedNotification", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	results := f.svc.BulkApprove(ctx, adminID, []service.BulkApprovalItem{
		{EventID: 10, CardAssetID: 5},
		{EventID: 11, CardAssetID: 6},
	}, "")

	assert.Len(t, results, 2)
	assert.True(t, results[0].OK)
	assert.False(t, results[1].OK)
	assert.NotEmpty(t, results[1].Error)
}

func TestApprovalService_Reopen(t *testing.T) {
	ctx := context.Background()
	adminID := int32(100)
	eventID := int32(10)

	t.Run("Rejected Goes Back To Pending", func(t *testing.T) {
		f := newApprovalFixture()
		event := pendingEvent(eventID, 1)
		event.ApprovalStatus = domain.ApprovalStatusRejected

		f.admin(ctx, adminID)
		f.eventRepo.On("GetByID", ctx, eventID).Return(event, nil)
		f.eventRepo.On("Update", ctx, mock.AnythingOfType("*domain.Event")).Return(nil)

		reopened, err := f.svc.Reopen(ctx, adminID, eventID)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusPending, reopened.ApprovalStatus)
	})

	t.Run("Approved Stays Approved", func(t *testing.T) {
		f := newApprovalFixture()
		event := pendingEvent(eventID, 1)
		event.ApprovalStatus = domain.ApprovalStatusApproved

		f.admin(ctx, adminID)
		f.eventRepo.On("GetByID", ctx, eventID).Return(event, nil)

		_, err := f.svc.Reopen(ctx, adminID, eventID)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})
}
