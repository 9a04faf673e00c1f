package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"referrify/internal/idgen"
	"referrify/internal/microservices/http-api/models"
	"referrify/internal/microservices/http-api/repository"
	"referrify/internal/microservices/http-api/service"
	"referrify/internal/storage"
	"referrify/internal/toast"
)

func newTestRouter(t *testing.T, opts RouterOptions) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := toast.NewRecorder(50, nil)
	store := storage.NewAdapter(
		storage.NewMemoryBackend("primary", nil),
		storage.NewMemoryBackend("secondary", nil),
		rec, nil,
	)
	ids := idgen.New(nil)
	h := storage.DefaultHorizons()

	jobs := repository.NewJobRepository(store, h, ids)
	notifications := service.NewNotificationService(repository.NewNotificationRepository(store, h, ids))
	return NewRouter(Services{
		Jobs:          service.NewJobService(jobs, notifications),
		Applications:  service.NewApplicationService(repository.NewApplicationRepository(store, h, ids), jobs, notifications, false),
		Notifications: notifications,
		Sessions:      service.NewSessionService(repository.NewSessionRepository(store, h)),
		Toasts:        rec,
	}, opts)
}

func call(t *testing.T, r *gin.Engine, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestRouter_CheckConn(t *testing.T) {
	r := newTestRouter(t, RouterOptions{})
	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/check-conn", nil, nil))
}

func TestRouter_JobToApplicationFlow(t *testing.T) {
	r := newTestRouter(t, RouterOptions{})

	var job models.Job
	code := call(t, r, http.MethodPost, "/api/jobs", map[string]any{
		"title":   "Backend Engineer",
		"company": "Acme",
		"type":    "Full-time",
		"postedBy": map[string]string{
			"name": "Jane Doe", "email": "jane@example.com", "role": "Alumni",
		},
	}, &job)
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, job.ID)

	var unread struct {
		Unread int `json:"unread"`
	}
	call(t, r, http.MethodGet, "/api/notifications/unread-count?role=student", nil, &unread)
	assert.Equal(t, 1, unread.Unread)

	var app models.JobApplication
	code = call(t, r, http.MethodPost, "/api/jobs/"+job.ID+"/applications",
		map[string]string{"name": "Ada", "email": "ada@uni.edu"}, &app)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, models.ApplicationPending, app.Status)

	var got models.Job
	call(t, r, http.MethodGet, "/api/jobs/"+job.ID, nil, &got)
	assert.Equal(t, 1, got.ApplicationsCount)

	code = call(t, r, http.MethodPut, "/api/applications/"+app.ID+"/status",
		map[string]string{"status": "accepted", "updatedBy": "Jane Doe"}, nil)
	require.Equal(t, http.StatusOK, code)

	var stats models.ApplicationStats
	call(t, r, http.MethodGet, "/api/applications/stats", nil, &stats)
	assert.Equal(t, models.ApplicationStats{Total: 1, Accepted: 1}, stats)

	call(t, r, http.MethodGet, "/api/notifications/unread-count?role=student", nil, &unread)
	assert.Equal(t, 2, unread.Unread)
	call(t, r, http.MethodPut, "/api/notifications/read-all?role=student", nil, nil)
	call(t, r, http.MethodGet, "/api/notifications/unread-count?role=student", nil, &unread)
	assert.Equal(t, 0, unread.Unread)

	var toasts struct {
		Toasts []toast.Toast `json:"toasts"`
	}
	call(t, r, http.MethodGet, "/api/toasts", nil, &toasts)
	titles := make([]string, 0, len(toasts.Toasts))
	for _, tt := range toasts.Toasts {
		titles = append(titles, tt.Title)
	}
	assert.Contains(t, titles, "Job Added")
	assert.Contains(t, titles, "Application Submitted!")
	assert.Contains(t, titles, "Application Status Updated")
}

func TestRouter_DeleteUnknownJob(t *testing.T) {
	r := newTestRouter(t, RouterOptions{})

	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodDelete, "/api/jobs/nonexistent-id", nil, nil))

	var list struct {
		Total int `json:"total"`
	}
	call(t, r, http.MethodGet, "/api/jobs", nil, &list)
	assert.Equal(t, 2, list.Total)
}

func TestRouter_Session(t *testing.T) {
	r := newTestRouter(t, RouterOptions{})

	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, "/api/session", nil, nil))

	var s models.UserSession
	code := call(t, r, http.MethodPut, "/api/session",
		map[string]string{"name": "Ada", "email": "ada@uni.edu", "role": "student"}, &s)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "student_ada@uni.edu", s.ID)

	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/api/session", nil, nil))
	assert.Equal(t, http.StatusNoContent, call(t, r, http.MethodDelete, "/api/session", nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, r, http.MethodGet, "/api/session", nil, nil))
}

func TestRouter_RateLimited(t *testing.T) {
	r := newTestRouter(t, RouterOptions{RateLimitRPS: 0.001, RateLimitBurst: 1})

	assert.Equal(t, http.StatusOK, call(t, r, http.MethodGet, "/check-conn", nil, nil))
	assert.Equal(t, http.StatusTooManyRequests, call(t, r, http.MethodGet, "/check-conn", nil, nil))
}
