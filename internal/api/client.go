package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// Gateway defines the interface the stores use to reach the tracker
// API. This interface is implemented by *Client and can be used for
// testing.
type Gateway interface {
	FetchProblems(ctx context.Context) ([]Problem, error)
	CreateProblem(ctx context.Context, draft ProblemDraft) (Problem, error)
	FetchUserAttempts(ctx context.Context, userID int64) ([]Attempt, error)
	CreateAttempt(ctx context.Context, draft AttemptDraft) (Attempt, error)
	UpdateAttempt(ctx context.Context, userID, problemID int64, patch AttemptPatch) (Attempt, error)
	DeleteAttempt(ctx context.Context, userID, problemID int64) error
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

// Client talks to the tracker HTTP API. Session credentials live in
// the client's cookie jar; callers decide whether a call should be
// attempted at all.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "http://127.0.0.1:5555/api"
	defaultUserAgent = "algotrack/0.1"
	defaultTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given base URL. An empty baseURL
// or non-positive timeout falls back to the defaults.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("init cookie jar: %w", err)
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchProblems retrieves the full catalog. The endpoint returns
// either a bare array or a paginated envelope; both are accepted and
// pagination metadata is discarded.
func (c *Client) FetchProblems(ctx context.Context) ([]Problem, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/problems", nil, &raw); err != nil {
		return nil, err
	}
	return decodeProblemList(raw)
}

// CreateProblem submits a catalog draft and returns the server record.
func (c *Client) CreateProblem(ctx context.Context, draft ProblemDraft) (Problem, error) {
	if c == nil {
		return Problem{}, fmt.Errorf("client is nil")
	}
	var created Problem
	if err := c.do(ctx, http.MethodPost, "/problems", draft, &created); err != nil {
		return Problem{}, err
	}
	return created, nil
}

// FetchUserAttempts retrieves all progress records for one user.
func (c *Client) FetchUserAttempts(ctx context.Context, userID int64) ([]Attempt, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var attempts []Attempt
	path := fmt.Sprintf("/users/%d/problems", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

// CreateAttempt submits a new progress record.
func (c *Client) CreateAttempt(ctx context.Context, draft AttemptDraft) (Attempt, error) {
	if c == nil {
		return Attempt{}, fmt.Errorf("client is nil")
	}
	var created Attempt
	if err := c.do(ctx, http.MethodPost, "/user-problems", draft, &created); err != nil {
		return Attempt{}, err
	}
	return created, nil
}

// UpdateAttempt patches the mutable fields of a progress record.
func (c *Client) UpdateAttempt(ctx context.Context, userID, problemID int64, patch AttemptPatch) (Attempt, error) {
	if c == nil {
		return Attempt{}, fmt.Errorf("client is nil")
	}
	var updated Attempt
	path := fmt.Sprintf("/users/%d/problems/%d", userID, problemID)
	if err := c.do(ctx, http.MethodPatch, path, patch, &updated); err != nil {
		return Attempt{}, err
	}
	return updated, nil
}

// DeleteAttempt removes a progress record. The server answers 204.
func (c *Client) DeleteAttempt(ctx context.Context, userID, problemID int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	path := fmt.Sprintf("/users/%d/problems/%d", userID, problemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Login establishes a cookie session for the given credentials.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	if c == nil {
		return User{}, fmt.Errorf("client is nil")
	}
	body := map[string]string{"email": email, "password": password}
	var user User
	if err := c.do(ctx, http.MethodPost, "/login", body, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Register creates an account and establishes a session for it.
func (c *Client) Register(ctx context.Context, email, password, name string) (User, error) {
	if c == nil {
		return User{}, fmt.Errorf("client is nil")
	}
	body := map[string]string{"email": email, "password": password, "user_name": name}
	var user User
	if err := c.do(ctx, http.MethodPost, "/register", body, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Logout ends the current session.
func (c *Client) Logout(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/logout", map[string]string{}, nil)
}

// CheckAuth returns the session's user, or an error wrapping
// ErrUnauthorized when no session is active.
func (c *Client) CheckAuth(ctx context.Context) (User, error) {
	if c == nil {
		return User{}, fmt.Errorf("client is nil")
	}
	var user User
	if err := c.do(ctx, http.MethodGet, "/authorized", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	op := method + " " + path

	reqURL := *c.baseURL
	reqURL.Path = strings.TrimRight(c.baseURL.Path, "/") + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &TimeoutError{Op: op, Err: err}
		}
		return &FetchError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &FetchError{Op: op, Status: resp.StatusCode, Err: ErrUnauthorized}
	}
	if resp.StatusCode >= 400 {
		return &FetchError{Op: op, Status: resp.StatusCode, Err: errors.New(errorMessage(resp.Body))}
	}
	if dest == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &FetchError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// decodeProblemList accepts both response shapes of GET /problems.
func decodeProblemList(raw json.RawMessage) ([]Problem, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var problems []Problem
		if err := json.Unmarshal(trimmed, &problems); err != nil {
			return nil, &FetchError{Op: "GET /problems", Err: fmt.Errorf("decode list: %w", err)}
		}
		return problems, nil
	}
	var envelope problemListEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, &FetchError{Op: "GET /problems", Err: fmt.Errorf("decode envelope: %w", err)}
	}
	return envelope.Problems, nil
}

// errorMessage extracts the server's error text; handlers answer with
// either an "error" or a "message" field.
func errorMessage(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return "request failed"
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	return errors.As(err, &ue) && ue.Timeout()
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", baseURL, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
