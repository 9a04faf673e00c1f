package dto

import "referrify/internal/microservices/http-api/models"

// SalaryInput is optional; a salary is only kept when both min and max are present
type SalaryInput struct {
	Min      *int64 `json:"min,omitempty" binding:"omitempty,gte=0"`
	Max      *int64 `json:"max,omitempty" binding:"omitempty,gte=0"`
	Currency string `json:"currency,omitempty"`
}

type PosterInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=Admin Alumni"`
}

// CreateJobDTO used for POST /api/jobs
type CreateJobDTO struct {
	Title               string       `json:"title" binding:"required,max=200"`
	Company             string       `json:"company" binding:"required,max=200"`
	Location            string       `json:"location"`
	Type                string       `json:"type" binding:"required,oneof=Full-time Part-time Internship Contract"`
	Department          string       `json:"department"`
	Description         string       `json:"description"`
	Requirements        []string     `json:"requirements"`
	Responsibilities    []string     `json:"responsibilities"`
	Salary              *SalaryInput `json:"salary,omitempty"`
	Benefits            []string     `json:"benefits"`
	ApplicationDeadline models.Date  `json:"applicationDeadline"`
	PostedBy            PosterInput  `json:"postedBy"`
	Status              string       `json:"status" binding:"omitempty,oneof=Active Closed Draft"`
}

// UpdateJobDTO used for PATCH /api/jobs/:job_id. Nil fields are left untouched.
type UpdateJobDTO struct {
	Title               *string      `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Company             *string      `json:"company,omitempty" binding:"omitempty,min=1,max=200"`
	Location            *string      `json:"location,omitempty"`
	Type                *string      `json:"type,omitempty" binding:"omitempty,oneof=Full-time Part-time Internship Contract"`
	Department          *string      `json:"department,omitempty"`
	Description         *string      `json:"description,omitempty"`
	Requirements        *[]string    `json:"requirements,omitempty"`
	Responsibilities    *[]string    `json:"responsibilities,omitempty"`
	Salary              *SalaryInput `json:"salary,omitempty"`
	Benefits            *[]string    `json:"benefits,omitempty"`
	ApplicationDeadline *models.Date `json:"applicationDeadline,omitempty"`
	Status              *string      `json:"status,omitempty" binding:"omitempty,oneof=Active Closed Draft"`
}

// Converters

// ToSalary applies the all-or-nothing rule
func (s *SalaryInput) ToSalary() *models.Salary {
	if s == nil || s.Min == nil || s.Max == nil {
		return nil
	}
	currency := s.Currency
	if currency == "" {
		currency = "USD"
	}
	return &models.Salary{Min: *s.Min, Max: *s.Max, Currency: currency}
}

func (d CreateJobDTO) ToModel() models.Job {
	status := models.JobStatus(d.Status)
	if status == "" {
		status = models.JobStatusActive
	}
	return models.Job{
		Title:               d.Title,
		Company:             d.Company,
		Location:            d.Location,
		Type:                models.JobType(d.Type),
		Department:          d.Department,
		Description:         d.Description,
		Requirements:        nonNil(d.Requirements),
		Responsibilities:    nonNil(d.Responsibilities),
		Salary:              d.Salary.ToSalary(),
		Benefits:            nonNil(d.Benefits),
		ApplicationDeadline: d.ApplicationDeadline,
		PostedBy: models.Poster{
			Name:  d.PostedBy.Name,
			Email: d.PostedBy.Email,
			Role:  models.PosterRole(d.PostedBy.Role),
		},
		Status: status,
	}
}

func (d UpdateJobDTO) ApplyTo(j *models.Job) {
	if d.Title != nil {
		j.Title = *d.Title
	}
	if d.Company != nil {
		j.Company = *d.Company
	}
	if d.Location != nil {
		j.Location = *d.Location
	}
	if d.Type != nil {
		j.Type = models.JobType(*d.Type)
	}
	if d.Department != nil {
		j.Department = *d.Department
	}
	if d.Description != nil {
		j.Description = *d.Description
	}
	if d.Requirements != nil {
		j.Requirements = nonNil(*d.Requirements)
	}
	if d.Responsibilities != nil {
		j.Responsibilities = nonNil(*d.Responsibilities)
	}
	if d.Salary != nil {
		j.Salary = d.Salary.ToSalary()
	}
	if d.Benefits != nil {
		j.Benefits = nonNil(*d.Benefits)
	}
	if d.ApplicationDeadline != nil {
		j.ApplicationDeadline = *d.ApplicationDeadline
	}
	if d.Status != nil {
		j.Status = models.JobStatus(*d.Status)
	}
}

// JobListResponse: list of jobs
type JobListResponse struct {
	Items []models.Job `json:"items"`
	Total int          `json:"total"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
