package repository

import (
	"context"

	"referrify/internal/microservices/http-api/models"
	"referrify/internal/storage"
	"referrify/internal/toast"
)

// sessionKeys are removed together on logout
var sessionKeys = []string{
	storage.UserSessionKey,
	storage.IsLoggedInKey,
	storage.UserRoleKey,
	storage.ProfilePictureKey,
	storage.StudentProfileKey,
	storage.AlumniProfileKey,
	storage.AdminProfileKey,
}

type SessionRepository interface {
	Set(ctx context.Context, session models.UserSession) bool
	Get(ctx context.Context) (*models.UserSession, bool)
	IsLoggedIn(ctx context.Context) bool
	Role(ctx context.Context) (models.Role, bool)
	Clear(ctx context.Context)
}

type sessionRepository struct {
	store    *storage.Adapter
	horizons storage.Horizons
}

func NewSessionRepository(store *storage.Adapter, horizons storage.Horizons) SessionRepository {
	return &sessionRepository{store: store, horizons: horizons}
}

// Set reports whether the session record itself reached the primary store
func (r *sessionRepository) Set(ctx context.Context, session models.UserSession) bool {
	ok := r.store.Set(ctx, r.horizons.SessionKey(storage.UserSessionKey), session)
	r.store.Set(ctx, r.horizons.SessionKey(storage.IsLoggedInKey), true)
	r.store.Set(ctx, r.horizons.SessionKey(storage.UserRoleKey), string(session.Role))
	return ok
}

func (r *sessionRepository) Get(ctx context.Context) (*models.UserSession, bool) {
	var s models.UserSession
	if !r.store.Get(ctx, r.horizons.SessionKey(storage.UserSessionKey), &s) {
		return nil, false
	}
	return &s, true
}

func (r *sessionRepository) IsLoggedIn(ctx context.Context) bool {
	var loggedIn bool
	if !r.store.Get(ctx, r.horizons.SessionKey(storage.IsLoggedInKey), &loggedIn) || !loggedIn {
		return false
	}
	_, ok := r.Get(ctx)
	return ok
}

func (r *sessionRepository) Role(ctx context.Context) (models.Role, bool) {
	var role string
	if !r.store.Get(ctx, r.horizons.SessionKey(storage.UserRoleKey), &role) || role == "" {
		return "", false
	}
	return models.Role(role), true
}

func (r *sessionRepository) Clear(ctx context.Context) {
	for _, name := range sessionKeys {
		r.store.Remove(ctx, r.horizons.SessionKey(name))
	}
	r.store.Logger().Info("session_cleared")
	r.store.Toast(toast.Success("Logged out successfully", "You have been safely logged out of the system."))
}
