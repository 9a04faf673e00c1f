package service

import (
	"context"
	"errors"
	"fmt"

	"referrify/internal/microservices/http-api/dto"
	"referrify/internal/microservices/http-api/models"
	"referrify/internal/microservices/http-api/repository"
)

var ErrIllegalTransition = errors.New("illegal status transition")

type ApplicationService interface {
	// Submit records an application against already-known job details
	Submit(ctx context.Context, jobID, jobTitle, company, postedBy string, student models.StudentInfo) (*models.JobApplication, error)
	// ApplyToJob looks the job up, submits and bumps the job's application counter
	ApplyToJob(ctx context.Context, jobID string, in dto.SubmitApplicationDTO) (*models.JobApplication, error)
	ListAll(ctx context.Context) []models.JobApplication
	ListByJob(ctx context.Context, jobID string) []models.JobApplication
	ListByPoster(ctx context.Context, postedBy string) []models.JobApplication
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, updatedBy string) (*models.JobApplication, error)
	Stats(ctx context.Context) models.ApplicationStats
}

type applicationService struct {
	apps     repository.ApplicationRepository
	jobs     repository.JobRepository
	notifier NotificationService
	strict   bool
}

// NewApplicationService: strict enables the status transition table
func NewApplicationService(apps repository.ApplicationRepository, jobs repository.JobRepository, notifier NotificationService, strict bool) ApplicationService {
	return &applicationService{
		apps:     apps,
		jobs:     jobs,
		notifier: notifier,
		strict:   strict,
	}
}

func (s *applicationService) Submit(ctx context.Context, jobID, jobTitle, company, postedBy string, student models.StudentInfo) (*models.JobApplication, error) {
	in := dto.SubmitApplicationDTO{
		Name:        student.Name,
		Email:       student.Email,
		ResumeURL:   student.ResumeURL,
		CoverLetter: student.CoverLetter,
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if jobID == "" {
		return nil, invalid("jobId", "required")
	}

	app := s.apps.Submit(ctx, jobID, jobTitle, company, postedBy, student)
	s.notifier.Notify(ctx, ApplicationSubmittedDrafts(app)...)
	return &app, nil
}

func (s *applicationService) ApplyToJob(ctx context.Context, jobID string, in dto.SubmitApplicationDTO) (*models.JobApplication, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	app, err := s.Submit(ctx, job.ID, job.Title, job.Company, job.PostedBy.Name, in.ToStudentInfo())
	if err != nil {
		return nil, err
	}
	s.jobs.IncrementApplications(ctx, job.ID)
	return app, nil
}

func (s *applicationService) ListAll(ctx context.Context) []models.JobApplication {
	return s.apps.ListAll(ctx)
}

func (s *applicationService) ListByJob(ctx context.Context, jobID string) []models.JobApplication {
	return s.apps.ListByJob(ctx, jobID)
}

func (s *applicationService) ListByPoster(ctx context.Context, postedBy string) []models.JobApplication {
	return s.apps.ListByPoster(ctx, postedBy)
}

// UpdateStatus changes the status and notifies the student
func (s *applicationService) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, updatedBy string) (*models.JobApplication, error) {
	if !status.Valid() {
		return nil, invalid("status", "oneof=pending reviewed accepted rejected")
	}
	if updatedBy == "" {
		return nil, invalid("updatedBy", "required")
	}

	var guard repository.StatusGuard
	if s.strict {
		guard = func(current models.JobApplication, next models.ApplicationStatus) error {
			if !current.Status.CanTransitionTo(next) {
				return fmt.Errorf("%s -> %s: %w", current.Status, next, ErrIllegalTransition)
			}
			return nil
		}
	}

	app, err := s.apps.UpdateStatus(ctx, id, status, guard)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, StatusUpdatedDrafts(*app, updatedBy)...)
	return app, nil
}

func (s *applicationService) Stats(ctx context.Context) models.ApplicationStats {
	return s.apps.Stats(ctx)
}
