package dto

import "referrify/internal/microservices/http-api/models"

// SubmitApplicationDTO used for POST /api/jobs/:job_id/applications
type SubmitApplicationDTO struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	ResumeURL   string `json:"resumeUrl,omitempty" binding:"omitempty,url"`
	CoverLetter string `json:"coverLetter,omitempty" binding:"omitempty,max=5000"`
}

func (d SubmitApplicationDTO) ToStudentInfo() models.StudentInfo {
	return models.StudentInfo{
		Name:        d.Name,
		Email:       d.Email,
		ResumeURL:   d.ResumeURL,
		CoverLetter: d.CoverLetter,
	}
}

// UpdateApplicationStatusDTO used for PUT /api/applications/:application_id/status
type UpdateApplicationStatusDTO struct {
	Status    string `json:"status" binding:"required,oneof=pending reviewed accepted rejected"`
	UpdatedBy string `json:"updatedBy" binding:"required"`
}

type ApplicationListResponse struct {
	Items []models.JobApplication `json:"items"`
	Total int                     `json:"total"`
}
