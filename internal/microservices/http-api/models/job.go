package models

import "time"

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeInternship JobType = "Internship"
	JobTypeContract   JobType = "Contract"
)

type JobStatus string

const (
	JobStatusActive JobStatus = "Active"
	JobStatusClosed JobStatus = "Closed"
	JobStatusDraft  JobStatus = "Draft"
)

type PosterRole string

const (
	PosterAdmin  PosterRole = "Admin"
	PosterAlumni PosterRole = "Alumni"
)

// Salary is all-or-nothing: a Job either has min, max and currency or no salary at all
type Salary struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

type Poster struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  PosterRole `json:"role"`
}

// Job is stored as one element of the referrify_jobs JSON array.
// Field names follow the browser build so existing collections stay readable.
type Job struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Company             string    `json:"company"`
	Location            string    `json:"location"`
	Type                JobType   `json:"type"`
	Department          string    `json:"department"`
	Description         string    `json:"description"`
	Requirements        []string  `json:"requirements"`
	Responsibilities    []string  `json:"responsibilities"`
	Salary              *Salary   `json:"salary,omitempty"`
	Benefits            []string  `json:"benefits"`
	ApplicationDeadline Date      `json:"applicationDeadline"`
	PostedBy            Poster    `json:"postedBy"`
	Status              JobStatus `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
	ApplicationsCount   int       `json:"applicationsCount"`
	ViewsCount          int       `json:"viewsCount"`
}

func (j Job) GetID() string { return j.ID }

func (j Job) IsActive() bool { return j.Status == JobStatusActive }
