package repository

import (
	"errors"
	"sync"

	"referrify/internal/microservices/http-api/models"
	"referrify/internal/storage"
	"referrify/internal/toast"
)

func newJob(title, company string) models.Job {
	return models.Job{
		Title:   title,
		Company: company,
		Type:    models.JobTypeFullTime,
		Status:  models.JobStatusActive,
		PostedBy: models.Poster{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Role:  models.PosterAlumni,
		},
	}
}

func (s *RepositoryTestSuite) TestJobs_EmptyStoreListsDefaults() {
	jobs := s.jobs.ListAll(s.ctx)

	s.Require().Len(jobs, 2)
	s.Equal("Software Engineer", jobs[0].Title)
	s.Equal("Meta", jobs[0].Company)
	s.Equal(15, jobs[0].ApplicationsCount)
	s.Equal(127, jobs[0].ViewsCount)
	s.Equal("Product Manager Intern", jobs[1].Title)
	s.Nil(jobs[1].Salary)

	_, persisted := s.primary.Raw(storage.JobsKey)
	s.False(persisted, "defaults are not written until the first mutation")
}

func (s *RepositoryTestSuite) TestJobs_AddPrependsAndRoundTrips() {
	created := s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))

	s.Regexp(`^job_\d+_[0-9a-f]{9}$`, created.ID)
	s.Equal(created.CreatedAt, created.UpdatedAt)
	s.Zero(created.ViewsCount)
	s.Zero(created.ApplicationsCount)

	all := s.jobs.ListAll(s.ctx)
	s.Require().Len(all, 3)
	s.Equal(created, all[0])

	got, err := s.jobs.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created, *got)

	s.Equal(toast.Toast{
		Title:       "Job Added",
		Description: "Backend Engineer at Acme has been posted successfully.",
		Variant:     toast.VariantDefault,
	}, s.lastToast())
}

func (s *RepositoryTestSuite) TestJobs_AddResetsCounters() {
	j := newJob("Data Analyst", "Initech")
	j.ID = "caller-chosen"
	j.ViewsCount = 99
	j.ApplicationsCount = 5

	created := s.jobs.Add(s.ctx, j)

	s.NotEqual("caller-chosen", created.ID)
	s.Zero(created.ViewsCount)
	s.Zero(created.ApplicationsCount)
}

func (s *RepositoryTestSuite) TestJobs_ListActive() {
	closed := newJob("Closed Role", "Acme")
	closed.Status = models.JobStatusClosed
	s.jobs.Add(s.ctx, closed)
	open := s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))

	active := s.jobs.ListActive(s.ctx)
	s.Len(active, 3)
	for _, j := range active {
		s.Equal(models.JobStatusActive, j.Status)
	}
	s.Equal(open.ID, active[0].ID)
}

func (s *RepositoryTestSuite) TestJobs_UpdateMergesFields() {
	created := s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))

	updated, err := s.jobs.Update(s.ctx, created.ID, func(j *models.Job) {
		j.Location = "Remote"
		j.ViewsCount = 1000
		j.ID = "hijack"
	})
	s.Require().NoError(err)

	s.Equal(created.ID, updated.ID)
	s.Equal("Remote", updated.Location)
	s.Equal("Backend Engineer", updated.Title)
	s.Zero(updated.ViewsCount)
	s.True(updated.UpdatedAt.After(created.UpdatedAt))
	s.Equal(created.CreatedAt, updated.CreatedAt)

	stored, err := s.jobs.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(*updated, *stored)
}

func (s *RepositoryTestSuite) TestJobs_UpdateUnknownLeavesCollection() {
	s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))
	before := s.jobs.ListAll(s.ctx)
	s.toasts.Drain()

	_, err := s.jobs.Update(s.ctx, "missing", func(j *models.Job) { j.Title = "x" })

	s.True(errors.Is(err, ErrJobNotFound))
	s.Equal(before, s.jobs.ListAll(s.ctx))
	s.Equal(toast.Failure("Error", "Job not found."), s.lastToast())
}

func (s *RepositoryTestSuite) TestJobs_DeleteUnknownIsNotFound() {
	before := len(s.jobs.ListAll(s.ctx))

	err := s.jobs.Delete(s.ctx, "nonexistent-id")

	s.ErrorIs(err, ErrJobNotFound)
	s.Len(s.jobs.ListAll(s.ctx), before)
}

func (s *RepositoryTestSuite) TestJobs_Delete() {
	created := s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))

	s.Require().NoError(s.jobs.Delete(s.ctx, created.ID))

	_, err := s.jobs.GetByID(s.ctx, created.ID)
	s.ErrorIs(err, ErrJobNotFound)
	s.Equal("Job Deleted", s.lastToast().Title)
}

func (s *RepositoryTestSuite) TestJobs_IncrementViewsIsMonotonic() {
	created := s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))

	for i := 0; i < 5; i++ {
		s.jobs.IncrementViews(s.ctx, created.ID)
	}
	s.jobs.IncrementViews(s.ctx, "missing")

	got, err := s.jobs.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(5, got.ViewsCount)
	s.Zero(got.ApplicationsCount)
}

func (s *RepositoryTestSuite) TestJobs_IncrementApplications() {
	created := s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))

	s.jobs.IncrementApplications(s.ctx, created.ID)
	s.jobs.IncrementApplications(s.ctx, created.ID)

	got, err := s.jobs.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(2, got.ApplicationsCount)
}

func (s *RepositoryTestSuite) TestJobs_IncrementOnDefaultPersistsCollection() {
	s.jobs.IncrementViews(s.ctx, "job_default_1")

	_, persisted := s.primary.Raw(storage.JobsKey)
	s.True(persisted)
	got, err := s.jobs.GetByID(s.ctx, "job_default_1")
	s.Require().NoError(err)
	s.Equal(128, got.ViewsCount)
}

func (s *RepositoryTestSuite) TestJobs_ConcurrentIncrementsAreNotLost() {
	created := s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.jobs.IncrementViews(s.ctx, created.ID)
		}()
	}
	wg.Wait()

	got, err := s.jobs.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(20, got.ViewsCount)
}

func (s *RepositoryTestSuite) TestJobs_Clear() {
	s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))

	s.jobs.Clear(s.ctx)

	_, inPrimary := s.primary.Raw(storage.JobsKey)
	_, inSecondary := s.secondary.Raw(storage.JobsKey)
	s.False(inPrimary)
	s.False(inSecondary)
	s.Len(s.jobs.ListAll(s.ctx), 2)
	s.Equal("Jobs Cleared", s.lastToast().Title)
}

func (s *RepositoryTestSuite) TestJobs_MergeReadDedups() {
	created := s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))

	first := s.jobs.ListAll(s.ctx)
	second := s.jobs.ListAll(s.ctx)

	s.Len(second, len(first))
	seen := map[string]bool{}
	for _, j := range second {
		s.False(seen[j.ID], "duplicate id %s", j.ID)
		seen[j.ID] = true
	}
	s.True(seen[created.ID])
}

func (s *RepositoryTestSuite) TestJobs_DeletingEveryJobSticks() {
	for _, j := range s.jobs.ListAll(s.ctx) {
		s.Require().NoError(s.jobs.Delete(s.ctx, j.ID))
	}

	s.Empty(s.jobs.ListAll(s.ctx), "seed jobs must not come back once the list was emptied")

	raw, ok := s.primary.Raw(storage.JobsKey)
	s.True(ok)
	s.Equal("[]", raw)

	s.jobs.IncrementViews(s.ctx, "job_default_1")
	s.Empty(s.jobs.ListAll(s.ctx))

	created := s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))
	all := s.jobs.ListAll(s.ctx)
	s.Require().Len(all, 1)
	s.Equal(created.ID, all[0].ID)
}

func (s *RepositoryTestSuite) TestJobs_ReadsBrowserShapedCollection() {
	browser := `[{"id":"job_1700000000000_abc","title":"Frontend Dev","company":"Acme",` +
		`"location":"Remote","type":"Full-time","department":"Web","description":"React work",` +
		`"requirements":["React"],"responsibilities":[],"benefits":[],` +
		`"applicationDeadline":"2025-12-31",` +
		`"postedBy":{"name":"Jane","email":"jane@example.com","role":"Alumni"},` +
		`"status":"Active","createdAt":"2023-11-14T22:13:20.000Z","updatedAt":"2023-11-14T22:13:20.000Z",` +
		`"applicationsCount":3,"viewsCount":10},` +
		`{"id":"job_1700000000001_def","title":"Ops","company":"Acme","type":"Contract",` +
		`"applicationDeadline":"","postedBy":{"name":"Jane","email":"jane@example.com","role":"Alumni"},` +
		`"status":"Draft","createdAt":"2023-11-14T22:13:21.000Z","updatedAt":"2023-11-14T22:13:21.000Z"}]`
	s.Require().NoError(s.primary.Write(s.ctx, storage.JobsKey, browser, 0))

	jobs := s.jobs.ListAll(s.ctx)
	s.Require().Len(jobs, 2)
	s.Equal("job_1700000000000_abc", jobs[0].ID)
	s.Equal("2025-12-31", jobs[0].ApplicationDeadline.Format("2006-01-02"))
	s.True(jobs[1].ApplicationDeadline.IsZero())

	created := s.jobs.Add(s.ctx, newJob("Backend Engineer", "Acme"))

	ids := []string{}
	for _, j := range s.jobs.ListAll(s.ctx) {
		ids = append(ids, j.ID)
	}
	s.Equal([]string{created.ID, "job_1700000000000_abc", "job_1700000000001_def"}, ids)

	raw, _ := s.primary.Raw(storage.JobsKey)
	s.Contains(raw, `"applicationDeadline":"2025-12-31"`)
}
