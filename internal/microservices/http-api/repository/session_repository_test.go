package repository

import (
	"referrify/internal/microservices/http-api/models"
	"referrify/internal/storage"
)

func (s *RepositoryTestSuite) TestSession_SetAndGet() {
	session := models.UserSession{ID: "u1", Name: "Ada", Email: "ada@uni.edu", Role: models.RoleStudent}

	s.True(s.sessions.Set(s.ctx, session))

	got, ok := s.sessions.Get(s.ctx)
	s.Require().True(ok)
	s.Equal(session, *got)
	s.True(s.sessions.IsLoggedIn(s.ctx))

	role, ok := s.sessions.Role(s.ctx)
	s.True(ok)
	s.Equal(models.RoleStudent, role)

	raw, _ := s.primary.Raw(storage.UserRoleKey)
	s.Equal("student", raw)
}

func (s *RepositoryTestSuite) TestSession_Clear() {
	s.sessions.Set(s.ctx, models.UserSession{ID: "u1", Name: "Ada", Email: "ada@uni.edu", Role: models.RoleAlumni})
	s.Require().NoError(s.primary.Write(s.ctx, storage.AlumniProfileKey, `{"company":"Acme"}`, 0))

	s.sessions.Clear(s.ctx)

	_, ok := s.sessions.Get(s.ctx)
	s.False(ok)
	s.False(s.sessions.IsLoggedIn(s.ctx))
	_, ok = s.sessions.Role(s.ctx)
	s.False(ok)
	_, ok = s.primary.Raw(storage.AlumniProfileKey)
	s.False(ok)
	s.Equal("Logged out successfully", s.lastToast().Title)
}

func (s *RepositoryTestSuite) TestSession_EmptyIsLoggedOut() {
	s.False(s.sessions.IsLoggedIn(s.ctx))
}
