package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/candidate-review/internal/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(&Options{BaseURL: server.URL})
}

func TestListJobs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/jobs", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "listing jobs must not send the token")
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"jobs": [
				{"_id": "j1", "title": "Backend Engineer", "department": "Eng", "applicant_count": 7, "status": "active"},
				{"id": "j2", "title": "Data Analyst", "applicants": 2, "status": "closed"}
			],
			"total": 2
		}`))
	})

	jobs, err := client.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "j1", jobs[0].ID)
	assert.Equal(t, 7, jobs[0].Applicants)
	assert.Equal(t, "j2", jobs[1].ID)
	assert.Equal(t, types.JobClosed, jobs[1].Status)
}

func TestListJobsFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success": false, "message": "database unavailable"}`))
	})

	_, err := client.ListJobs(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "database unavailable")
}

func TestGetJob(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/jobs/j1", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"job": {"_id": "j1", "title": "Backend Engineer", "requirements": ["Go", "SQL"], "status": "active"}
		}`))
	})

	job, err := client.GetJob(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, "j1", job.ID)
	assert.Equal(t, []string{"Go", "SQL"}, job.Requirements)
	assert.True(t, job.RequiresSkill("go"))
}

func TestListApplications(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/applications", r.URL.Path)
		assert.Equal(t, "j1", r.URL.Query().Get("job_id"))
		_, _ = w.Write([]byte(`{
			"success": true,
			"applications": [
				{"_id": "a1", "job_id": "j1", "student_name": "Alice Smith", "overall_score": 92, "skills": ["Go"], "status": "pending"},
				{"id": "a2", "jobId": "j1", "studentName": "Bob Jones", "overallScore": 75, "status": "shortlisted"}
			],
			"stats": {"pending": 1, "shortlisted": 1, "interviewed": 0, "rejected": 0}
		}`))
	})

	apps, counts, err := client.ListApplications(context.Background(), "j1")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "Alice Smith", apps[0].CandidateName)
	assert.Equal(t, 92, apps[0].Scores.Overall)
	assert.Equal(t, "a2", apps[1].ID)
	assert.Equal(t, 2, counts.Total())
}

func TestListApplicationsSkipsMalformedRecords(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"success": true,
			"applications": [
				{"_id": "a1", "student_name": "Alice Smith"},
				"not an object"
			]
		}`))
	})

	apps, _, err := client.ListApplications(context.Background(), "j1")
	require.NoError(t, err, "one malformed record must not fail the load")
	require.Len(t, apps, 1)
	assert.Equal(t, "a1", apps[0].ID)
}

func TestUpdateStatusSendsBearerToken(t *testing.T) {
	var gotAuth, gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/applications/a1/status", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		_, _ = w.Write([]byte(`{"success": true}`))
	})
	client.SetToken("secret-token")

	err := client.UpdateStatus(context.Background(), "a1", types.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.JSONEq(t, `{"status": "shortlisted"}`, gotBody)
}

func TestUpdateStatusUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success": false, "message": "Unauthorized"}`))
	})

	err := client.UpdateStatus(context.Background(), "a1", types.StatusRejected)
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestRescoreAll(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/jobs/j1/rescore-all", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success": true, "rescored": 14, "total": 14}`))
	})
	client.SetToken("secret-token")

	count, err := client.RescoreAll(context.Background(), "j1")
	require.NoError(t, err)
	assert.Equal(t, 14, count)
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"token": "tok-123",
			"user": {"id": "u1", "email": "hr@example.com", "name": "HR User", "role": "hr"}
		}`))
	})

	creds, err := client.Login(context.Background(), "hr@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", creds.Token)
	assert.Equal(t, "HR User", creds.Name)
}

func TestVerifyExpiredToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"valid": false, "message": "Session expired"}`))
	})
	client.SetToken("stale")

	valid, err := client.Verify(context.Background())
	require.NoError(t, err, "a rejected token is a clean false, not an error")
	assert.False(t, valid)
}
