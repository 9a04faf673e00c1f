package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"referrify/internal/idgen"
	"referrify/internal/microservices/http-api/dto"
	"referrify/internal/microservices/http-api/models"
	"referrify/internal/microservices/http-api/repository"
	"referrify/internal/storage"
	"referrify/internal/toast"
)

type fixture struct {
	ctx           context.Context
	jobs          repository.JobRepository
	apps          repository.ApplicationRepository
	notifications repository.NotificationRepository
	toasts        *toast.Recorder

	jobSvc   JobService
	appSvc   ApplicationService
	notifSvc NotificationService
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}

	toasts := toast.NewRecorder(100, nil)
	store := storage.NewAdapter(
		storage.NewMemoryBackend("primary", nil),
		storage.NewMemoryBackend("secondary", nil),
		toasts, nil,
	)
	ids := idgen.New(clock)
	horizons := storage.DefaultHorizons()

	f := &fixture{
		ctx:           context.Background(),
		jobs:          repository.NewJobRepository(store, horizons, ids),
		apps:          repository.NewApplicationRepository(store, horizons, ids),
		notifications: repository.NewNotificationRepository(store, horizons, ids),
		toasts:        toasts,
	}
	f.notifSvc = NewNotificationService(f.notifications)
	f.jobSvc = NewJobService(f.jobs, f.notifSvc)
	f.appSvc = NewApplicationService(f.apps, f.jobs, f.notifSvc, strict)
	return f
}

func int64p(v int64) *int64 { return &v }

func validJob(title, company string) dto.CreateJobDTO {
	return dto.CreateJobDTO{
		Title:   title,
		Company: company,
		Type:    "Full-time",
		PostedBy: dto.PosterInput{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Role:  "Alumni",
		},
	}
}

func (f *fixture) unread(t *testing.T, role models.Role) int {
	t.Helper()
	n, err := f.notifSvc.UnreadCount(f.ctx, role)
	require.NoError(t, err)
	return n
}
