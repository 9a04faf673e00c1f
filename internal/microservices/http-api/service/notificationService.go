package service

import (
	"context"
	"fmt"

	"referrify/internal/microservices/http-api/models"
	"referrify/internal/microservices/http-api/repository"
)

type NotificationService interface {
	// Notify persists drafts produced by the event rules
	Notify(ctx context.Context, drafts ...models.NotificationDraft) []models.Notification
	List(ctx context.Context, role models.Role) ([]models.Notification, error)
	UnreadCount(ctx context.Context, role models.Role) (int, error)
	MarkRead(ctx context.Context, id string)
	MarkAllRead(ctx context.Context, role models.Role) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Notify(ctx context.Context, drafts ...models.NotificationDraft) []models.Notification {
	created := make([]models.Notification, 0, len(drafts))
	for _, d := range drafts {
		created = append(created, s.repo.Create(ctx, d))
	}
	return created
}

// List returns everything when role is empty, otherwise the role's view
func (s *notificationService) List(ctx context.Context, role models.Role) ([]models.Notification, error) {
	if role == "" {
		return s.repo.ListAll(ctx), nil
	}
	if err := checkViewerRole(role); err != nil {
		return nil, err
	}
	return s.repo.ListByRole(ctx, role), nil
}

func (s *notificationService) UnreadCount(ctx context.Context, role models.Role) (int, error) {
	if err := checkViewerRole(role); err != nil {
		return 0, err
	}
	return s.repo.UnreadCount(ctx, role), nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) {
	s.repo.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, role models.Role) error {
	if err := checkViewerRole(role); err != nil {
		return err
	}
	s.repo.MarkAllRead(ctx, role)
	return nil
}

func checkViewerRole(role models.Role) error {
	if !role.ViewerRole() {
		return invalid("role", fmt.Sprintf("oneof=student alumni admin (got %q)", role))
	}
	return nil
}
