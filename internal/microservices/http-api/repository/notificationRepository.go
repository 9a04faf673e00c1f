package repository

import (
	"context"
	"slices"
	"sync"

	"referrify/internal/idgen"
	"referrify/internal/microservices/http-api/models"
	"referrify/internal/storage"
)

type NotificationRepository interface {
	Create(ctx context.Context, draft models.NotificationDraft) models.Notification
	ListAll(ctx context.Context) []models.Notification
	ListByRole(ctx context.Context, role models.Role) []models.Notification
	MarkRead(ctx context.Context, id string)
	MarkAllRead(ctx context.Context, role models.Role)
	UnreadCount(ctx context.Context, role models.Role) int
}

type notificationRepository struct {
	store *storage.Adapter
	key   storage.Key
	ids   *idgen.Generator
	mu    sync.Mutex
}

func NewNotificationRepository(store *storage.Adapter, horizons storage.Horizons, ids *idgen.Generator) NotificationRepository {
	if ids == nil {
		ids = idgen.New(nil)
	}
	return &notificationRepository{
		store: store,
		key:   horizons.Notifications(),
		ids:   ids,
	}
}

func (r *notificationRepository) Create(ctx context.Context, draft models.NotificationDraft) models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := models.Notification{
		ID:         r.ids.NotificationID(),
		Type:       draft.Type,
		Title:      draft.Title,
		Message:    draft.Message,
		CreatedAt:  r.ids.Now(),
		IsRead:     false,
		RelatedID:  draft.RelatedID,
		TargetRole: draft.TargetRole,
		FromUser:   draft.FromUser,
	}

	all := append([]models.Notification{n}, r.load(ctx)...)
	storage.WriteCollection(ctx, r.store, r.key, all)

	r.store.Logger().Debug("notification_created", "notification_id", n.ID, "target_role", n.TargetRole, "type", n.Type)
	return n
}

// ListAll is newest first
func (r *notificationRepository) ListAll(ctx context.Context) []models.Notification {
	return r.load(ctx)
}

func (r *notificationRepository) ListByRole(ctx context.Context, role models.Role) []models.Notification {
	all := r.load(ctx)
	out := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if n.VisibleTo(role) {
			out = append(out, n)
		}
	}
	return out
}

// MarkRead is a no-op for unknown ids and for notifications already read
func (r *notificationRepository) MarkRead(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.load(ctx)
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if all[i].IsRead {
			return
		}
		all[i].IsRead = true
		storage.WriteCollection(ctx, r.store, r.key, all)
		return
	}
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, role models.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.load(ctx)
	for i := range all {
		if all[i].VisibleTo(role) && !all[i].IsRead {
			all[i].IsRead = true
		}
	}
	storage.WriteCollection(ctx, r.store, r.key, all)
}

func (r *notificationRepository) UnreadCount(ctx context.Context, role models.Role) int {
	count := 0
	for _, n := range r.ListByRole(ctx, role) {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (r *notificationRepository) load(ctx context.Context) []models.Notification {
	all := storage.ReadCollection(ctx, r.store, r.key, models.Notification.GetID)
	slices.SortStableFunc(all, func(a, b models.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return all
}
