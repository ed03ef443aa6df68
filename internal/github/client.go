// ABOUTME: Minimal GitHub REST client for the identity, repos, and contents APIs.
// ABOUTME: Covers exactly the calls the sync engine needs, nothing more.

package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.github.com"

var (
	// ErrUnauthorized means the token was rejected by the identity endpoint.
	ErrUnauthorized = errors.New("github: invalid token")
	// ErrNotFound maps a 404 from the repos or contents endpoints.
	ErrNotFound = errors.New("github: not found")
)

// APIError is a non-2xx response that is neither a 401 nor a 404.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("github: %s (status %d)", e.Message, e.Status)
}

// Client talks to a contents-style repository API with a personal access
// token. BaseURL is overridable for tests.
type Client struct {
	Token      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		Token:   token,
		BaseURL: defaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// User identifies the authenticated account.
type User struct {
	Login string `json:"login"`
}

// File is a single entry from the contents API. SHA is the hash token the
// API requires when overwriting an existing file.
type File struct {
	Path string `json:"path"`
	SHA  string `json:"sha"`
}

func (c *Client) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		apiErr := &APIError{Status: resp.StatusCode}
		var ghMsg struct {
			Message string `json:"message"`
		}
		if data, err := io.ReadAll(resp.Body); err == nil {
			if json.Unmarshal(data, &ghMsg) == nil {
				apiErr.Message = ghMsg.Message
			}
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// User verifies the token against the identity endpoint and returns the
// authenticated account.
func (c *Client) User(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/user", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetRepo checks that owner/repo exists. A missing repository surfaces as
// ErrNotFound.
func (c *Client) GetRepo(ctx context.Context, owner, repo string) error {
	path := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
	return c.do(ctx, http.MethodGet, path, nil, nil)
}

// CreateRepo provisions a private, auto-initialized repository under the
// authenticated user.
func (c *Client) CreateRepo(ctx context.Context, name, description string) error {
	payload := map[string]any{
		"name":        name,
		"description": description,
		"private":     true,
		"auto_init":   true,
	}
	return c.do(ctx, http.MethodPost, "/user/repos", payload, nil)
}

// GetFile reads file metadata at path; ErrNotFound when the file is absent.
func (c *Client) GetFile(ctx context.Context, owner, repo, path string) (*File, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/contents/%s",
		url.PathEscape(owner), url.PathEscape(repo), path)
	var f File
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// PutFile creates or updates the file at path. sha must carry the hash token
// from GetFile when overwriting an existing file and be empty for a new one.
func (c *Client) PutFile(ctx context.Context, owner, repo, path, message string, content []byte, sha string) error {
	endpoint := fmt.Sprintf("/repos/%s/%s/contents/%s",
		url.PathEscape(owner), url.PathEscape(repo), path)
	payload := map[string]any{
		"message": message,
		"content": base64.StdEncoding.EncodeToString(content),
	}
	if sha != "" {
		payload["sha"] = sha
	}
	return c.do(ctx, http.MethodPut, endpoint, payload, nil)
}
