// Package backend is the HTTP client for the remote Passa a Bola API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/passa-a-bola/passa-web/internal/model"
)

// DefaultTimeout bounds every request when no timeout is configured
const DefaultTimeout = 10 * time.Second

// StatusError is returned for any non-2xx response
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Detail extracts the server-provided message from err, if any
func Detail(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Detail
	}
	return ""
}

// Client calls the remote API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do performs a JSON request. A non-empty token is sent as a bearer token.
func (c *Client) Do(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.send(req, token, result)
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path, token string, result any) error {
	return c.Do(ctx, http.MethodGet, path, token, nil, result)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path, token string, body, result any) error {
	return c.Do(ctx, http.MethodPost, path, token, body, result)
}

// Put performs a PUT request
func (c *Client) Put(ctx context.Context, path, token string, body, result any) error {
	return c.Do(ctx, http.MethodPut, path, token, body, result)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path, token string, result any) error {
	return c.Do(ctx, http.MethodDelete, path, token, nil, result)
}

// LoginResponse is returned by the token-issuing endpoint
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	Role        model.Role `json:"role"`
	Name        string     `json:"nome"`
}

// Login exchanges form-encoded credentials for a token
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	form := url.Values{
		"username": {email},
		"password": {password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var result LoginResponse
	if err := c.send(req, "", &result); err != nil {
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, errors.New("login response has no access token")
	}
	return &result, nil
}

// RegisterRequest creates an account
type RegisterRequest struct {
	Name     string     `json:"nome"`
	Email    string     `json:"email"`
	Password string     `json:"senha"`
	Role     model.Role `json:"role"`
}

// RegisterResponse confirms an account was created
type RegisterResponse struct {
	Message string     `json:"mensagem"`
	Email   string     `json:"email"`
	Role    model.Role `json:"role"`
}

// Register creates an account on the remote API
func (c *Client) Register(ctx context.Context, reg RegisterRequest) (*RegisterResponse, error) {
	var result RegisterResponse
	if err := c.Post(ctx, "/auth/register", "", reg, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) send(req *http.Request, token string, result any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Detail: parseDetail(respBody)}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// parseDetail reads FastAPI's {"detail": ...} error body. Validation errors
// carry a list there instead of a string; those use the first message.
func parseDetail(body []byte) string {
	var errResp struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil || len(errResp.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(errResp.Detail, &detail); err == nil {
		return detail
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(errResp.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}
	return ""
}
