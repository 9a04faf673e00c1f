package models

import "time"

type NotificationType string

const (
	NotificationJobApplication NotificationType = "job_application"
	NotificationNewJobPosted   NotificationType = "new_job_posted"
	NotificationStatusUpdate   NotificationType = "application_status_update"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
	RoleAdmin   Role = "admin"
	RoleAll     Role = "all" // broadcast target only, never a viewer role
)

// ViewerRole reports whether r may be used to query notifications
func (r Role) ViewerRole() bool {
	return r == RoleStudent || r == RoleAlumni || r == RoleAdmin
}

type FromUser struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Notification fields never change after creation except IsRead, which only goes false -> true
type Notification struct {
	ID         string           `json:"id"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	CreatedAt  time.Time        `json:"createdAt"`
	IsRead     bool             `json:"isRead"`
	RelatedID  string           `json:"relatedId"`
	TargetRole Role             `json:"targetRole"`
	FromUser   *FromUser        `json:"fromUser,omitempty"`
}

func (n Notification) GetID() string { return n.ID }

// VisibleTo is the role-or-broadcast rule used by every role-scoped query
func (n Notification) VisibleTo(role Role) bool {
	return n.TargetRole == role || n.TargetRole == RoleAll
}

// NotificationDraft is a notification before the repository assigns ID, createdAt and isRead
type NotificationDraft struct {
	Type       NotificationType
	Title      string
	Message    string
	RelatedID  string
	TargetRole Role
	FromUser   *FromUser
}
