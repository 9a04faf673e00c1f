package models

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationReviewed ApplicationStatus = "reviewed"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// allowedTransitions is only consulted when strict transitions are switched on.
// accepted and rejected are terminal.
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:  {ApplicationReviewed, ApplicationAccepted, ApplicationRejected},
	ApplicationReviewed: {ApplicationAccepted, ApplicationRejected},
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether next is reachable from s in the transition table
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// JobApplication keeps a copy of the job's title, company and poster taken at
// submission time; later job edits do not flow into it
type JobApplication struct {
	ID           string            `json:"id"`
	JobID        string            `json:"jobId"`
	StudentID    string            `json:"studentId"`
	StudentName  string            `json:"studentName"`
	StudentEmail string            `json:"studentEmail"`
	AppliedAt    time.Time         `json:"appliedAt"`
	Status       ApplicationStatus `json:"status"`
	ResumeURL    string            `json:"resumeUrl,omitempty"`
	CoverLetter  string            `json:"coverLetter,omitempty"`
	JobTitle     string            `json:"jobTitle"`
	Company      string            `json:"company"`
	PostedBy     string            `json:"postedBy"`
}

func (a JobApplication) GetID() string { return a.ID }

// StudentInfo is what a student supplies when applying
type StudentInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ResumeURL   string `json:"resumeUrl,omitempty"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

// StudentIDFromEmail derives the student identity the way the browser build did
func StudentIDFromEmail(email string) string {
	return "student_" + email
}

type ApplicationStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Reviewed int `json:"reviewed"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}
