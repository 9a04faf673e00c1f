package service

import (
	"context"
	"fmt"

	"referrify/internal/microservices/http-api/dto"
	"referrify/internal/microservices/http-api/models"
	"referrify/internal/microservices/http-api/repository"
)

type SessionService interface {
	Set(ctx context.Context, in dto.SetSessionDTO) (*models.UserSession, error)
	Get(ctx context.Context) (*models.UserSession, bool)
	Clear(ctx context.Context)
}

type sessionService struct {
	repo repository.SessionRepository
}

func NewSessionService(repo repository.SessionRepository) SessionService {
	return &sessionService{repo: repo}
}

func (s *sessionService) Set(ctx context.Context, in dto.SetSessionDTO) (*models.UserSession, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	session := in.ToModel()
	if session.ID == "" {
		// same shape as student IDs on applications: "<role>_<email>"
		session.ID = fmt.Sprintf("%s_%s", session.Role, session.Email)
	}
	s.repo.Set(ctx, session)
	return &session, nil
}

// Get only reports a session while the logged-in flag is also present
func (s *sessionService) Get(ctx context.Context) (*models.UserSession, bool) {
	if !s.repo.IsLoggedIn(ctx) {
		return nil, false
	}
	return s.repo.Get(ctx)
}

func (s *sessionService) Clear(ctx context.Context) {
	s.repo.Clear(ctx)
}
