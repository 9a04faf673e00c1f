package service

import (
	"context"

	"referrify/internal/microservices/http-api/dto"
	"referrify/internal/microservices/http-api/models"
	"referrify/internal/microservices/http-api/repository"
)

type JobService interface {
	ListAll(ctx context.Context) []models.Job
	ListActive(ctx context.Context) []models.Job
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, in dto.CreateJobDTO) (*models.Job, error)
	Update(ctx context.Context, id string, patch dto.UpdateJobDTO) (*models.Job, error)
	Delete(ctx context.Context, id string) error
	RecordView(ctx context.Context, id string)
	Clear(ctx context.Context)
}

type jobService struct {
	jobs     repository.JobRepository
	notifier NotificationService
}

func NewJobService(jobs repository.JobRepository, notifier NotificationService) JobService {
	return &jobService{jobs: jobs, notifier: notifier}
}

func (s *jobService) ListAll(ctx context.Context) []models.Job {
	return s.jobs.ListAll(ctx)
}

func (s *jobService) ListActive(ctx context.Context) []models.Job {
	return s.jobs.ListActive(ctx)
}

func (s *jobService) GetByID(ctx context.Context, id string) (*models.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// Create stores the job and announces it to students and admins
func (s *jobService) Create(ctx context.Context, in dto.CreateJobDTO) (*models.Job, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := checkSalary(in.Salary); err != nil {
		return nil, err
	}

	job := s.jobs.Add(ctx, in.ToModel())
	s.notifier.Notify(ctx, JobPostedDrafts(job)...)
	return &job, nil
}

func (s *jobService) Update(ctx context.Context, id string, patch dto.UpdateJobDTO) (*models.Job, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	if err := checkSalary(patch.Salary); err != nil {
		return nil, err
	}
	return s.jobs.Update(ctx, id, patch.ApplyTo)
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	return s.jobs.Delete(ctx, id)
}

func (s *jobService) RecordView(ctx context.Context, id string) {
	s.jobs.IncrementViews(ctx, id)
}

func (s *jobService) Clear(ctx context.Context) {
	s.jobs.Clear(ctx)
}

func checkSalary(in *dto.SalaryInput) error {
	if in == nil || in.Min == nil || in.Max == nil {
		return nil
	}
	if *in.Min > *in.Max {
		return invalid("salary", "min must not exceed max")
	}
	return nil
}
