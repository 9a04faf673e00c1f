package dto

import "referrify/internal/microservices/http-api/models"

// SetSessionDTO used for PUT /api/session
type SetSessionDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Role           string `json:"role" binding:"required,oneof=student alumni admin"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

func (d SetSessionDTO) ToModel() models.UserSession {
	return models.UserSession{
		ID:             d.ID,
		Name:           d.Name,
		Email:          d.Email,
		Role:           models.Role(d.Role),
		ProfilePicture: d.ProfilePicture,
	}
}
