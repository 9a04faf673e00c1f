package service

import (
	"fmt"

	"referrify/internal/microservices/http-api/models"
)

// The event rules below are the only producers of notifications.
// Each returns drafts; persisting them is the NotificationService's job.

// JobPostedDrafts announces a new job to students and admins
func JobPostedDrafts(job models.Job) []models.NotificationDraft {
	from := &models.FromUser{Name: job.PostedBy.Name, Role: string(job.PostedBy.Role)}
	return []models.NotificationDraft{
		{
			Type:       models.NotificationNewJobPosted,
			Title:      "New Job Opportunity",
			Message:    fmt.Sprintf("New %s position at %s", job.Title, job.Company),
			RelatedID:  job.ID,
			TargetRole: models.RoleStudent,
			FromUser:   from,
		},
		{
			Type:       models.NotificationNewJobPosted,
			Title:      "New Job Posted by Alumni",
			Message:    fmt.Sprintf("%s posted %s at %s", job.PostedBy.Name, job.Title, job.Company),
			RelatedID:  job.ID,
			TargetRole: models.RoleAdmin,
			FromUser:   from,
		},
	}
}

// ApplicationSubmittedDrafts tells alumni and admins about a new application
func ApplicationSubmittedDrafts(app models.JobApplication) []models.NotificationDraft {
	message := fmt.Sprintf("%s applied for %s at %s", app.StudentName, app.JobTitle, app.Company)
	drafts := make([]models.NotificationDraft, 0, 2)
	for _, role := range []models.Role{models.RoleAlumni, models.RoleAdmin} {
		drafts = append(drafts, models.NotificationDraft{
			Type:       models.NotificationJobApplication,
			Title:      "New Job Application",
			Message:    message,
			RelatedID:  app.ID,
			TargetRole: role,
			FromUser:   &models.FromUser{Name: app.StudentName, Role: "Student"},
		})
	}
	return drafts
}

// StatusUpdatedDrafts tells the student their application moved
func StatusUpdatedDrafts(app models.JobApplication, updatedBy string) []models.NotificationDraft {
	return []models.NotificationDraft{{
		Type:       models.NotificationStatusUpdate,
		Title:      "Application Status Updated",
		Message:    fmt.Sprintf("Your application for %s has been %s", app.JobTitle, app.Status),
		RelatedID:  app.ID,
		TargetRole: models.RoleStudent,
		FromUser:   &models.FromUser{Name: updatedBy, Role: "Alumni"},
	}}
}
