package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"referrify/internal/microservices/http-api/dto"
	"referrify/internal/microservices/http-api/models"
)

// --- MOCK SERVICES ---

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) ListAll(ctx context.Context) []models.Job {
	return m.Called(ctx).Get(0).([]models.Job)
}

func (m *MockJobService) ListActive(ctx context.Context) []models.Job {
	return m.Called(ctx).Get(0).([]models.Job)
}

func (m *MockJobService) GetByID(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) Create(ctx context.Context, in dto.CreateJobDTO) (*models.Job, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) Update(ctx context.Context, id string, patch dto.UpdateJobDTO) (*models.Job, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobService) RecordView(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *MockJobService) Clear(ctx context.Context) {
	m.Called(ctx)
}

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Submit(ctx context.Context, jobID, jobTitle, company, postedBy string, student models.StudentInfo) (*models.JobApplication, error) {
	args := m.Called(ctx, jobID, jobTitle, company, postedBy, student)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockApplicationService) ApplyToJob(ctx context.Context, jobID string, in dto.SubmitApplicationDTO) (*models.JobApplication, error) {
	args := m.Called(ctx, jobID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockApplicationService) ListAll(ctx context.Context) []models.JobApplication {
	return m.Called(ctx).Get(0).([]models.JobApplication)
}

func (m *MockApplicationService) ListByJob(ctx context.Context, jobID string) []models.JobApplication {
	return m.Called(ctx, jobID).Get(0).([]models.JobApplication)
}

func (m *MockApplicationService) ListByPoster(ctx context.Context, postedBy string) []models.JobApplication {
	return m.Called(ctx, postedBy).Get(0).([]models.JobApplication)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, updatedBy string) (*models.JobApplication, error) {
	args := m.Called(ctx, id, status, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobApplication), args.Error(1)
}

func (m *MockApplicationService) Stats(ctx context.Context) models.ApplicationStats {
	return m.Called(ctx).Get(0).(models.ApplicationStats)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, drafts ...models.NotificationDraft) []models.Notification {
	return m.Called(ctx, drafts).Get(0).([]models.Notification)
}

func (m *MockNotificationService) List(ctx context.Context, role models.Role) ([]models.Notification, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, role models.Role) (int, error) {
	args := m.Called(ctx, role)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, id string) {
	m.Called(ctx, id)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, role models.Role) error {
	return m.Called(ctx, role).Error(0)
}
