package repository

import (
	"referrify/internal/microservices/http-api/models"
)

func draftFor(role models.Role, title string) models.NotificationDraft {
	return models.NotificationDraft{
		Type:       models.NotificationNewJobPosted,
		Title:      title,
		Message:    title,
		RelatedID:  "job_1",
		TargetRole: role,
	}
}

func (s *RepositoryTestSuite) TestNotifications_CreateDefaults() {
	n := s.notifications.Create(s.ctx, draftFor(models.RoleStudent, "hello"))

	s.Regexp(`^notif_\d+_[0-9a-f]{9}$`, n.ID)
	s.False(n.IsRead)
	s.False(n.CreatedAt.IsZero())

	all := s.notifications.ListAll(s.ctx)
	s.Require().Len(all, 1)
	s.Equal(n, all[0])
}

func (s *RepositoryTestSuite) TestNotifications_SortedNewestFirst() {
	for i := 0; i < 5; i++ {
		s.notifications.Create(s.ctx, draftFor(models.RoleStudent, "n"))
	}

	all := s.notifications.ListAll(s.ctx)
	s.Require().Len(all, 5)
	for i := 1; i < len(all); i++ {
		s.False(all[i].CreatedAt.After(all[i-1].CreatedAt))
	}
}

func (s *RepositoryTestSuite) TestNotifications_ListByRoleIncludesBroadcast() {
	s.notifications.Create(s.ctx, draftFor(models.RoleStudent, "student"))
	s.notifications.Create(s.ctx, draftFor(models.RoleAdmin, "admin"))
	s.notifications.Create(s.ctx, draftFor(models.RoleAll, "everyone"))

	student := s.notifications.ListByRole(s.ctx, models.RoleStudent)
	s.Len(student, 2)
	for _, n := range student {
		s.True(n.TargetRole == models.RoleStudent || n.TargetRole == models.RoleAll)
	}
	s.Len(s.notifications.ListByRole(s.ctx, models.RoleAlumni), 1)
}

func (s *RepositoryTestSuite) TestNotifications_MarkRead() {
	n := s.notifications.Create(s.ctx, draftFor(models.RoleStudent, "one"))
	s.notifications.Create(s.ctx, draftFor(models.RoleStudent, "two"))

	s.notifications.MarkRead(s.ctx, n.ID)
	s.notifications.MarkRead(s.ctx, "missing")

	s.Equal(1, s.notifications.UnreadCount(s.ctx, models.RoleStudent))
	for _, got := range s.notifications.ListAll(s.ctx) {
		if got.ID == n.ID {
			s.True(got.IsRead)
		}
	}
}

func (s *RepositoryTestSuite) TestNotifications_MarkAllReadScopedToRole() {
	s.notifications.Create(s.ctx, draftFor(models.RoleStudent, "s1"))
	s.notifications.Create(s.ctx, draftFor(models.RoleStudent, "s2"))
	s.notifications.Create(s.ctx, draftFor(models.RoleAll, "all"))
	s.notifications.Create(s.ctx, draftFor(models.RoleAdmin, "a1"))

	s.Equal(3, s.notifications.UnreadCount(s.ctx, models.RoleStudent))
	s.Equal(2, s.notifications.UnreadCount(s.ctx, models.RoleAdmin))

	s.notifications.MarkAllRead(s.ctx, models.RoleStudent)

	s.Zero(s.notifications.UnreadCount(s.ctx, models.RoleStudent))
	// the broadcast was visible to students, so it is read for admins too
	s.Equal(1, s.notifications.UnreadCount(s.ctx, models.RoleAdmin))
}

func (s *RepositoryTestSuite) TestNotifications_UnreadCountMatchesList() {
	s.notifications.Create(s.ctx, draftFor(models.RoleAlumni, "a"))
	read := s.notifications.Create(s.ctx, draftFor(models.RoleAlumni, "b"))
	s.notifications.Create(s.ctx, draftFor(models.RoleAll, "c"))
	s.notifications.MarkRead(s.ctx, read.ID)

	unread := 0
	for _, n := range s.notifications.ListByRole(s.ctx, models.RoleAlumni) {
		if !n.IsRead {
			unread++
		}
	}
	s.Equal(unread, s.notifications.UnreadCount(s.ctx, models.RoleAlumni))
}
