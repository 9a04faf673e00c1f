package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"referrify/internal/idgen"
	"referrify/internal/microservices/http-api/models"
	"referrify/internal/storage"
	"referrify/internal/toast"
)

var ErrApplicationNotFound = errors.New("application not found")

// StatusGuard may veto a status change; it sees the application as currently stored
type StatusGuard func(current models.JobApplication, next models.ApplicationStatus) error

type ApplicationRepository interface {
	Submit(ctx context.Context, jobID, jobTitle, company, postedBy string, student models.StudentInfo) models.JobApplication
	ListAll(ctx context.Context) []models.JobApplication
	ListByJob(ctx context.Context, jobID string) []models.JobApplication
	ListByPoster(ctx context.Context, postedBy string) []models.JobApplication
	GetByID(ctx context.Context, id string) (*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, guard StatusGuard) (*models.JobApplication, error)
	Stats(ctx context.Context) models.ApplicationStats
}

type applicationRepository struct {
	store *storage.Adapter
	key   storage.Key
	ids   *idgen.Generator
	mu    sync.Mutex
}

func NewApplicationRepository(store *storage.Adapter, horizons storage.Horizons, ids *idgen.Generator) ApplicationRepository {
	if ids == nil {
		ids = idgen.New(nil)
	}
	return &applicationRepository{
		store: store,
		key:   horizons.Applications(),
		ids:   ids,
	}
}

// Submit appends a pending application. Title, company and poster are copied
// from the job as it is now.
func (r *applicationRepository) Submit(ctx context.Context, jobID, jobTitle, company, postedBy string, student models.StudentInfo) models.JobApplication {
	r.mu.Lock()
	defer r.mu.Unlock()

	app := models.JobApplication{
		ID:           r.ids.ApplicationID(),
		JobID:        jobID,
		StudentID:    models.StudentIDFromEmail(student.Email),
		StudentName:  student.Name,
		StudentEmail: student.Email,
		AppliedAt:    r.ids.Now(),
		Status:       models.ApplicationPending,
		ResumeURL:    student.ResumeURL,
		CoverLetter:  student.CoverLetter,
		JobTitle:     jobTitle,
		Company:      company,
		PostedBy:     postedBy,
	}

	apps := append(r.load(ctx), app)
	storage.WriteCollection(ctx, r.store, r.key, apps)

	r.store.Logger().Info("application_submitted", "application_id", app.ID, "job_id", jobID)
	r.store.Toast(toast.Success("Application Submitted!",
		fmt.Sprintf("Your application for %s at %s has been submitted successfully.", jobTitle, company)))
	return app
}

func (r *applicationRepository) ListAll(ctx context.Context) []models.JobApplication {
	return r.load(ctx)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) []models.JobApplication {
	return r.filter(ctx, func(a models.JobApplication) bool { return a.JobID == jobID })
}

func (r *applicationRepository) ListByPoster(ctx context.Context, postedBy string) []models.JobApplication {
	return r.filter(ctx, func(a models.JobApplication) bool { return a.PostedBy == postedBy })
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*models.JobApplication, error) {
	for _, a := range r.load(ctx) {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("get application %s: %w", id, ErrApplicationNotFound)
}

// UpdateStatus overwrites the status in place. A nil guard accepts any change.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus, guard StatusGuard) (*models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	apps := r.load(ctx)
	idx := -1
	for i := range apps {
		if apps[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("update application %s: %w", id, ErrApplicationNotFound)
	}

	if guard != nil {
		if err := guard(apps[idx], status); err != nil {
			return nil, err
		}
	}

	apps[idx].Status = status
	storage.WriteCollection(ctx, r.store, r.key, apps)

	updated := apps[idx]
	r.store.Logger().Info("application_status_updated", "application_id", id, "status", status)
	r.store.Toast(toast.Success("Application Status Updated",
		fmt.Sprintf("Application for %s marked as %s", updated.JobTitle, status)))
	return &updated, nil
}

func (r *applicationRepository) Stats(ctx context.Context) models.ApplicationStats {
	apps := r.load(ctx)
	stats := models.ApplicationStats{Total: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case models.ApplicationPending:
			stats.Pending++
		case models.ApplicationReviewed:
			stats.Reviewed++
		case models.ApplicationAccepted:
			stats.Accepted++
		case models.ApplicationRejected:
			stats.Rejected++
		}
	}
	return stats
}

func (r *applicationRepository) filter(ctx context.Context, keep func(models.JobApplication) bool) []models.JobApplication {
	all := r.load(ctx)
	out := make([]models.JobApplication, 0, len(all))
	for _, a := range all {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func (r *applicationRepository) load(ctx context.Context) []models.JobApplication {
	return storage.ReadCollection(ctx, r.store, r.key, models.JobApplication.GetID)
}
