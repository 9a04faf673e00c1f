package repository

import (
	"errors"

	"referrify/internal/microservices/http-api/models"
	"referrify/internal/storage"
)

var ada = models.StudentInfo{
	Name:        "Ada Student",
	Email:       "ada@uni.edu",
	ResumeURL:   "https://files.example.com/ada.pdf",
	CoverLetter: "I would love to join.",
}

func (s *RepositoryTestSuite) TestApplications_SubmitIsPending() {
	app := s.applications.Submit(s.ctx, "job_1", "Backend Engineer", "Acme", "Jane Doe", ada)

	s.Regexp(`^app_\d+_[0-9a-f]{9}$`, app.ID)
	s.Equal(models.ApplicationPending, app.Status)
	s.Equal("student_ada@uni.edu", app.StudentID)
	s.Equal("Backend Engineer", app.JobTitle)
	s.Equal("Jane Doe", app.PostedBy)

	byJob := s.applications.ListByJob(s.ctx, "job_1")
	s.Require().Len(byJob, 1)
	s.Equal(app, byJob[0])
	s.Equal("Application Submitted!", s.lastToast().Title)
}

func (s *RepositoryTestSuite) TestApplications_UsesDistinctPhysicalKeys() {
	s.applications.Submit(s.ctx, "job_1", "Backend Engineer", "Acme", "Jane Doe", ada)

	_, inPrimary := s.primary.Raw(storage.ApplicationsKey)
	_, inSecondary := s.secondary.Raw(storage.ApplicationsMirrorKey)
	s.True(inPrimary)
	s.True(inSecondary)
}

func (s *RepositoryTestSuite) TestApplications_Filters() {
	s.applications.Submit(s.ctx, "job_1", "Backend Engineer", "Acme", "Jane Doe", ada)
	s.applications.Submit(s.ctx, "job_2", "Designer", "Globex", "John Roe", ada)
	s.applications.Submit(s.ctx, "job_2", "Designer", "Globex", "John Roe", models.StudentInfo{Name: "Bo", Email: "bo@uni.edu"})

	s.Len(s.applications.ListAll(s.ctx), 3)
	s.Len(s.applications.ListByJob(s.ctx, "job_2"), 2)
	s.Len(s.applications.ListByPoster(s.ctx, "Jane Doe"), 1)
	s.Empty(s.applications.ListByPoster(s.ctx, "Nobody"))
}

func (s *RepositoryTestSuite) TestApplications_UpdateStatus() {
	app := s.applications.Submit(s.ctx, "job_1", "Backend Engineer", "Acme", "Jane Doe", ada)

	updated, err := s.applications.UpdateStatus(s.ctx, app.ID, models.ApplicationAccepted, nil)
	s.Require().NoError(err)
	s.Equal(models.ApplicationAccepted, updated.Status)

	got, err := s.applications.GetByID(s.ctx, app.ID)
	s.Require().NoError(err)
	s.Equal(models.ApplicationAccepted, got.Status)
	s.Equal("Application for Backend Engineer marked as accepted", s.lastToast().Description)
}

func (s *RepositoryTestSuite) TestApplications_UpdateStatusUnknown() {
	_, err := s.applications.UpdateStatus(s.ctx, "missing", models.ApplicationRejected, nil)
	s.ErrorIs(err, ErrApplicationNotFound)
}

func (s *RepositoryTestSuite) TestApplications_GuardVetoesChange() {
	app := s.applications.Submit(s.ctx, "job_1", "Backend Engineer", "Acme", "Jane Doe", ada)
	veto := errors.New("nope")

	_, err := s.applications.UpdateStatus(s.ctx, app.ID, models.ApplicationReviewed,
		func(current models.JobApplication, next models.ApplicationStatus) error {
			s.Equal(models.ApplicationPending, current.Status)
			s.Equal(models.ApplicationReviewed, next)
			return veto
		})

	s.ErrorIs(err, veto)
	got, _ := s.applications.GetByID(s.ctx, app.ID)
	s.Equal(models.ApplicationPending, got.Status)
}

func (s *RepositoryTestSuite) TestApplications_Stats() {
	a := s.applications.Submit(s.ctx, "job_1", "Backend Engineer", "Acme", "Jane Doe", ada)
	b := s.applications.Submit(s.ctx, "job_1", "Backend Engineer", "Acme", "Jane Doe", ada)
	s.applications.Submit(s.ctx, "job_1", "Backend Engineer", "Acme", "Jane Doe", ada)
	_, _ = s.applications.UpdateStatus(s.ctx, a.ID, models.ApplicationAccepted, nil)
	_, _ = s.applications.UpdateStatus(s.ctx, b.ID, models.ApplicationRejected, nil)

	s.Equal(models.ApplicationStats{Total: 3, Pending: 1, Accepted: 1, Rejected: 1}, s.applications.Stats(s.ctx))
}

func (s *RepositoryTestSuite) TestApplications_MergesBothStores() {
	// an application only the secondary store knows about still lists
	err := s.secondary.Write(s.ctx, storage.ApplicationsMirrorKey,
		`%5B%7B%22id%22%3A%22app_legacy%22%2C%22jobId%22%3A%22job_1%22%2C%22status%22%3A%22reviewed%22%7D%5D`, 0)
	s.Require().NoError(err)
	s.applications.Submit(s.ctx, "job_1", "Backend Engineer", "Acme", "Jane Doe", ada)

	byJob := s.applications.ListByJob(s.ctx, "job_1")
	s.Len(byJob, 2)
}
