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

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	ListAll(ctx context.Context) []models.Job
	ListActive(ctx context.Context) []models.Job
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Add(ctx context.Context, job models.Job) models.Job
	Update(ctx context.Context, id string, apply func(*models.Job)) (*models.Job, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string)
	IncrementApplications(ctx context.Context, id string)
	Clear(ctx context.Context)
}

type jobRepository struct {
	store *storage.Adapter
	key   storage.Key
	ids   *idgen.Generator

	// serializes read-modify-write of the whole collection
	mu sync.Mutex
}

func NewJobRepository(store *storage.Adapter, horizons storage.Horizons, ids *idgen.Generator) JobRepository {
	if ids == nil {
		ids = idgen.New(nil)
	}
	return &jobRepository{
		store: store,
		key:   horizons.Jobs(),
		ids:   ids,
	}
}

func (r *jobRepository) ListAll(ctx context.Context) []models.Job {
	return r.load(ctx)
}

func (r *jobRepository) ListActive(ctx context.Context) []models.Job {
	all := r.load(ctx)
	active := make([]models.Job, 0, len(all))
	for _, j := range all {
		if j.IsActive() {
			active = append(active, j)
		}
	}
	return active
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	for _, j := range r.load(ctx) {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, fmt.Errorf("get job %s: %w", id, ErrJobNotFound)
}

// Add assigns identity, timestamps and zeroed counters, then prepends so the
// newest job lists first
func (r *jobRepository) Add(ctx context.Context, job models.Job) models.Job {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.ids.Now()
	job.ID = r.ids.JobID()
	job.CreatedAt = now
	job.UpdatedAt = now
	job.ApplicationsCount = 0
	job.ViewsCount = 0

	jobs := append([]models.Job{job}, r.load(ctx)...)
	r.save(ctx, jobs)

	r.store.Logger().Info("job_added", "job_id", job.ID, "title", job.Title, "company", job.Company)
	r.store.Toast(toast.Success("Job Added", fmt.Sprintf("%s at %s has been posted successfully.", job.Title, job.Company)))
	return job
}

// Update runs apply against the stored job. Identity, createdAt and the
// counters cannot be changed through it.
func (r *jobRepository) Update(ctx context.Context, id string, apply func(*models.Job)) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := r.load(ctx)
	idx := indexOfJob(jobs, id)
	if idx == -1 {
		r.store.Toast(toast.Failure("Error", "Job not found."))
		return nil, fmt.Errorf("update job %s: %w", id, ErrJobNotFound)
	}

	current := jobs[idx]
	updated := current
	if apply != nil {
		apply(&updated)
	}
	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt
	updated.ApplicationsCount = current.ApplicationsCount
	updated.ViewsCount = current.ViewsCount
	updated.UpdatedAt = r.ids.Now()
	jobs[idx] = updated

	r.save(ctx, jobs)
	r.store.Toast(toast.Success("Job Updated", "Job details have been updated successfully."))
	return &updated, nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := r.load(ctx)
	kept := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	if len(kept) == len(jobs) {
		r.store.Toast(toast.Failure("Error", "Job not found."))
		return fmt.Errorf("delete job %s: %w", id, ErrJobNotFound)
	}

	r.save(ctx, kept)
	r.store.Logger().Info("job_deleted", "job_id", id)
	r.store.Toast(toast.Success("Job Deleted", "Job has been removed successfully."))
	return nil
}

// IncrementViews is a silent no-op for unknown ids
func (r *jobRepository) IncrementViews(ctx context.Context, id string) {
	r.bump(ctx, id, func(j *models.Job) { j.ViewsCount++ })
}

func (r *jobRepository) IncrementApplications(ctx context.Context, id string) {
	r.bump(ctx, id, func(j *models.Job) { j.ApplicationsCount++ })
}

// Clear drops the collection from both stores; the next read lists the defaults again
func (r *jobRepository) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store.Remove(ctx, r.key)
	r.store.Logger().Info("jobs_cleared")
	r.store.Toast(toast.Success("Jobs Cleared", "All job data has been cleared."))
}

func (r *jobRepository) bump(ctx context.Context, id string, inc func(*models.Job)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := r.load(ctx)
	idx := indexOfJob(jobs, id)
	if idx == -1 {
		return
	}
	inc(&jobs[idx])
	jobs[idx].UpdatedAt = r.ids.Now()
	r.save(ctx, jobs)
}

// load serves the seed jobs only while nothing has ever been stored;
// a stored empty list stays empty
func (r *jobRepository) load(ctx context.Context) []models.Job {
	jobs, found := storage.LoadCollection(ctx, r.store, r.key, models.Job.GetID)
	if !found {
		return defaultJobs(r.ids.Now())
	}
	return jobs
}

func (r *jobRepository) save(ctx context.Context, jobs []models.Job) {
	storage.WriteCollection(ctx, r.store, r.key, jobs)
}

func indexOfJob(jobs []models.Job, id string) int {
	for i := range jobs {
		if jobs[i].ID == id {
			return i
		}
	}
	return -1
}
