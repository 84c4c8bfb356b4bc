// Package api provides the HTTP client for the job-portal collaborator
// service. It owns the wire round trips; callers only ever see canonical
// types produced by the wire package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/candidate-review/internal/types"
	"github.com/jonathan/candidate-review/internal/wire"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL is the portal address used when none is configured.
const DefaultBaseURL = "http://localhost:5000"

// Error represents a failed portal request.
type Error struct {
	Op      string // operation, e.g. "list applications"
	Status  int    // HTTP status, 0 when the request never completed
	Message string // portal-supplied message, if any
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("portal: %s: %v", e.Op, e.Cause)
	case e.Message != "":
		return fmt.Sprintf("portal: %s: HTTP %d: %s", e.Op, e.Status, e.Message)
	default:
		return fmt.Sprintf("portal: %s: HTTP %d", e.Op, e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the portal client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Verbose bool // log advisory wire-schema warnings
}

// DefaultOptions returns sensible defaults for the portal client.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Client talks to the job portal. The zero value is not usable; construct
// with NewClient. The bearer token is attached only to mutating and
// session-scoped calls.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	verbose bool
}

// NewClient creates a portal client.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		verbose: opts.Verbose,
	}
}

// SetToken sets the bearer token attached to authenticated calls.
// An empty token clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Credentials is the session material returned by a successful login.
type Credentials struct {
	Token  string
	UserID string
	Email  string
	Name   string
	Role   string
}

type userPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// ListJobs fetches and normalizes the job collection.
func (c *Client) ListJobs(ctx context.Context) ([]types.JobPosting, error) {
	var payload struct {
		Jobs []json.RawMessage `json:"jobs"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, nil, false, "list jobs", &payload); err != nil {
		return nil, err
	}

	jobs := make([]types.JobPosting, 0, len(payload.Jobs))
	for _, raw := range payload.Jobs {
		c.warn("job", wire.CheckJob(raw))
		var rec wire.JobRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Printf("[wire] skipping malformed job record: %v", err)
			continue
		}
		jobs = append(jobs, wire.NormalizeJob(rec))
	}
	return jobs, nil
}

// GetJob fetches and normalizes a single job posting.
func (c *Client) GetJob(ctx context.Context, jobID string) (*types.JobPosting, error) {
	var payload struct {
		Job json.RawMessage `json:"job"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+url.PathEscape(jobID), nil, nil, false, "get job", &payload); err != nil {
		return nil, err
	}

	c.warn("job", wire.CheckJob(payload.Job))
	var rec wire.JobRecord
	if err := json.Unmarshal(payload.Job, &rec); err != nil {
		return nil, &Error{Op: "get job", Message: "malformed job payload", Cause: err}
	}
	job := wire.NormalizeJob(rec)
	return &job, nil
}

// ListApplications fetches and normalizes the applications for a job, along
// with the portal's status counts.
func (c *Client) ListApplications(ctx context.Context, jobID string) ([]types.Application, types.StatusCounts, error) {
	var payload struct {
		Applications []json.RawMessage  `json:"applications"`
		Stats        types.StatusCounts `json:"stats"`
	}
	query := url.Values{"job_id": {jobID}}
	if err := c.do(ctx, http.MethodGet, "/api/applications", query, nil, false, "list applications", &payload); err != nil {
		return nil, types.StatusCounts{}, err
	}

	apps := make([]types.Application, 0, len(payload.Applications))
	for _, raw := range payload.Applications {
		c.warn("application", wire.CheckApplication(raw))
		var rec wire.ApplicationRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Printf("[wire] skipping malformed application record: %v", err)
			continue
		}
		apps = append(apps, wire.NormalizeApplication(rec))
	}
	return apps, payload.Stats, nil
}

// UpdateStatus persists a review-status change. Requires a bearer token.
func (c *Client) UpdateStatus(ctx context.Context, appID string, status types.Status) error {
	body := map[string]string{"status": string(status)}
	path := "/api/applications/" + url.PathEscape(appID) + "/status"
	return c.do(ctx, http.MethodPut, path, nil, body, true, "update status", nil)
}

// RescoreAll triggers a bulk server-side rescore for a job and returns the
// number of applications rescored. Requires a bearer token.
func (c *Client) RescoreAll(ctx context.Context, jobID string) (int, error) {
	var payload struct {
		Rescored int `json:"rescored"`
	}
	path := "/api/jobs/" + url.PathEscape(jobID) + "/rescore-all"
	if err := c.do(ctx, http.MethodPost, path, nil, nil, true, "rescore all", &payload); err != nil {
		return 0, err
	}
	return payload.Rescored, nil
}

// Login exchanges HR credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	var payload struct {
		Token string      `json:"token"`
		User  userPayload `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, false, "login", &payload); err != nil {
		return nil, err
	}
	return &Credentials{
		Token:  payload.Token,
		UserID: payload.User.ID,
		Email:  payload.User.Email,
		Name:   payload.User.Name,
		Role:   payload.User.Role,
	}, nil
}

// Logout invalidates the current session token on the portal.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, true, "logout", nil)
}

// Verify reports whether the current session token is still valid.
func (c *Client) Verify(ctx context.Context) (bool, error) {
	var payload struct {
		Valid bool `json:"valid"`
	}
	err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, nil, true, "verify session", &payload)
	if err != nil {
		var apiErr *Error
		// An expired or unknown token comes back as 401, not a transport
		// failure.
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return false, nil
		}
		return false, err
	}
	return payload.Valid, nil
}

// do executes one portal round trip and decodes the response envelope into
// out (when non-nil). Portal errors arrive as {"success": false, "message":
// ...} with a 4xx/5xx status.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, authed bool, op string, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Message: "failed to encode request body", Cause: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &Error{Op: op, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Message string `json:"message"`
			Err     string `json:"error"`
		}
		_ = json.Unmarshal(data, &envelope)
		message := envelope.Message
		if message == "" {
			message = envelope.Err
		}
		return &Error{Op: op, Status: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &Error{Op: op, Status: resp.StatusCode, Message: "malformed response body", Cause: err}
		}
	}
	return nil
}

// warn logs advisory wire-schema findings in verbose mode.
func (c *Client) warn(kind string, warnings []string) {
	if !c.verbose {
		return
	}
	for _, w := range warnings {
		log.Printf("[wire] %s record: %s", kind, w)
	}
}
