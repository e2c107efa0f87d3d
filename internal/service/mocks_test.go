package service_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"dawati-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockEventRepo
type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
func (m *MockEventRepo) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventRepo) ListByOwner(ctx context.Context, ownerID int32, page, pageSize int32) ([]domain.Event, int32, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.Event), args.Get(1).(int32), args.Error(2)
}
func (m *MockEventRepo) ListByApprovalStatus(ctx context.Context, status domain.ApprovalStatus, page, pageSize int32) ([]domain.Event, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Event), args.Get(1).(int32), args.Error(2)
}
func (m *MockEventRepo) ListPastUpcoming(ctx context.Context, before string) ([]domain.Event, error) {
	args := m.Called(ctx, before)
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockGuestRepo
type MockGuestRepo struct {
	mock.Mock
}

func (m *MockGuestRepo) Create(ctx context.Context, guest *domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}
func (m *MockGuestRepo) GetByID(ctx context.Context, id int32) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) Update(ctx context.Context, guest *domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}
func (m *MockGuestRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockGuestRepo) ListByEvent(ctx context.Context, eventID int32) ([]domain.Guest, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) ListByAdder(ctx context.Context, eventID, userID int32) ([]domain.Guest, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Get(0).([]domain.Guest), args.Error(1)
}
func (m *MockGuestRepo) SeatsUsedByAdder(ctx context.Context, eventID, userID int32) (int32, error) {
	args := m.Called(ctx, eventID, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockGuestRepo) SeatsUsedTotal(ctx context.Context, eventID int32) (int32, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockGuestRepo) CountDispatched(ctx context.Context, eventID int32) (int32, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockGuestRepo) ExistsByPhone(ctx context.Context, eventID int32, phone string) (bool, error) {
	args := m.Called(ctx, eventID, phone)
	return args.Bool(0), args.Error(1)
}
func (m *MockGuestRepo) MarkDispatched(ctx context.Context, id int32, sentAt string) error {
	args := m.Called(ctx, id, sentAt)
	return args.Error(0)
}
func (m *MockGuestRepo) ReassignAdder(ctx context.Context, eventID, fromUserID, toUserID int32) error {
	args := m.Called(ctx, eventID, fromUserID, toUserID)
	return args.Error(0)
}

// MockCollaboratorRepo
type MockCollaboratorRepo struct {
	mock.Mock
}

func (m *MockCollaboratorRepo) Create(ctx context.Context, collab *domain.Collaborator) error {
	args := m.Called(ctx, collab)
	return args.Error(0)
}
func (m *MockCollaboratorRepo) GetByID(ctx context.Context, id int32) (*domain.Collaborator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collaborator), args.Error(1)
}
func (m *MockCollaboratorRepo) GetByEventAndUser(ctx context.Context, eventID, userID int32) (*domain.Collaborator, error) {
	args := m.Called(ctx, eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Collaborator), args.Error(1)
}
func (m *MockCollaboratorRepo) Update(ctx context.Context, collab *domain.Collaborator) error {
	args := m.Called(ctx, collab)
	return args.Error(0)
}
func (m *MockCollaboratorRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCollaboratorRepo) ListByEvent(ctx context.Context, eventID int32) ([]domain.Collaborator, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]domain.Collaborator), args.Error(1)
}
func (m *MockCollaboratorRepo) AllocatedTotal(ctx context.Context, eventID int32) (int32, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int32), args.Error(1)
}

// MockCardAssetRepo
type MockCardAssetRepo struct {
	mock.Mock
}

func (m *MockCardAssetRepo) Create(ctx context.Context, asset *domain.CardAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}
func (m *MockCardAssetRepo) GetByID(ctx context.Context, id int32) (*domain.CardAsset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CardAsset), args.Error(1)
}
func (m *MockCardAssetRepo) Update(ctx context.Context, asset *domain.CardAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}
func (m *MockCardAssetRepo) DeleteExpiredPending(ctx context.Context, before string) error {
	args := m.Called(ctx, before)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendEventApprovedNotification(ctx context.Context, email, name, eventTitle string) error {
	args := m.Called(ctx, email, name, eventTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendEventRejectedNotification(ctx context.Context, email, name, eventTitle, reason string) error {
	args := m.Called(ctx, email, name, eventTitle, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendOutreachReminder(ctx context.Context, email, name, eventTitle string, undispatched int32) error {
	args := m.Called(ctx, email, name, eventTitle, undispatched)
	return args.Error(0)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, contentType, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockStorage) SaveFile(key string, reader io.Reader) error {
	args := m.Called(key, reader)
	return args.Error(0)
}
func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
