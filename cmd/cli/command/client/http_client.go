package client

// http_client.go = handles HTTP client functionality for the referrify CLI.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"referrify/internal/microservices/http-api/dto"
	"referrify/internal/microservices/http-api/models"
)

// defines the HTTP client structure and methods
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// APIError carries the status and error message returned by the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int                   `json:"total"`
}

type UnreadCountResponse struct {
	Role   string `json:"role"`
	Unread int    `json:"unread"`
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// do sends body as JSON and decodes the response into out when out is non-nil
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, want int, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Jobs

func (c *HTTPClient) ListJobs(ctx context.Context, activeOnly bool) ([]models.Job, error) {
	path := "/api/jobs"
	if activeOnly {
		path += "?active=true"
	}
	var result dto.JobListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *HTTPClient) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(id), nil, http.StatusOK, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *HTTPClient) CreateJob(ctx context.Context, request *dto.CreateJobDTO) (*models.Job, error) {
	var job models.Job
	if err := c.do(ctx, http.MethodPost, "/api/jobs", request, http.StatusCreated, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *HTTPClient) UpdateJob(ctx context.Context, id string, request *dto.UpdateJobDTO) (*models.Job, error) {
	var job models.Job
	if err := c.do(ctx, http.MethodPatch, "/api/jobs/"+url.PathEscape(id), request, http.StatusOK, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *HTTPClient) DeleteJob(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/jobs/"+url.PathEscape(id), nil, http.StatusNoContent, nil)
}

func (c *HTTPClient) RecordView(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/jobs/"+url.PathEscape(id)+"/views", nil, http.StatusNoContent, nil)
}

func (c *HTTPClient) ApplyToJob(ctx context.Context, jobID string, request *dto.SubmitApplicationDTO) (*models.JobApplication, error) {
	var app models.JobApplication
	path := "/api/jobs/" + url.PathEscape(jobID) + "/applications"
	if err := c.do(ctx, http.MethodPost, path, request, http.StatusCreated, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// Applications

// ListApplications filters by jobID when set, otherwise by poster name when set
func (c *HTTPClient) ListApplications(ctx context.Context, jobID, postedBy string) ([]models.JobApplication, error) {
	q := url.Values{}
	if jobID != "" {
		q.Set("job_id", jobID)
	}
	if postedBy != "" {
		q.Set("posted_by", postedBy)
	}
	path := "/api/applications"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var result dto.ApplicationListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *HTTPClient) ApplicationStats(ctx context.Context) (*models.ApplicationStats, error) {
	var stats models.ApplicationStats
	if err := c.do(ctx, http.MethodGet, "/api/applications/stats", nil, http.StatusOK, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) UpdateApplicationStatus(ctx context.Context, id string, request *dto.UpdateApplicationStatusDTO) (*models.JobApplication, error) {
	var app models.JobApplication
	path := "/api/applications/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, http.MethodPut, path, request, http.StatusOK, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// Notifications

func (c *HTTPClient) ListNotifications(ctx context.Context, role string) ([]models.Notification, error) {
	path := "/api/notifications"
	if role != "" {
		path += "?role=" + url.QueryEscape(role)
	}
	var result NotificationListResponse
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result.Notifications, nil
}

func (c *HTTPClient) UnreadCount(ctx context.Context, role string) (int, error) {
	var result UnreadCountResponse
	path := "/api/notifications/unread-count?role=" + url.QueryEscape(role)
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &result); err != nil {
		return 0, err
	}
	return result.Unread, nil
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id string) error {
	path := "/api/notifications/" + url.PathEscape(id) + "/read"
	return c.do(ctx, http.MethodPut, path, nil, http.StatusNoContent, nil)
}

func (c *HTTPClient) MarkAllNotificationsRead(ctx context.Context, role string) error {
	path := "/api/notifications/read-all?role=" + url.QueryEscape(role)
	return c.do(ctx, http.MethodPut, path, nil, http.StatusNoContent, nil)
}

// Session

func (c *HTTPClient) GetSession(ctx context.Context) (*models.UserSession, error) {
	var session models.UserSession
	if err := c.do(ctx, http.MethodGet, "/api/session", nil, http.StatusOK, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *HTTPClient) SetSession(ctx context.Context, request *dto.SetSessionDTO) (*models.UserSession, error) {
	var session models.UserSession
	if err := c.do(ctx, http.MethodPut, "/api/session", request, http.StatusOK, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *HTTPClient) ClearSession(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/session", nil, http.StatusNoContent, nil)
}
