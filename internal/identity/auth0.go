package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Auth0Client implements Provider against the Auth0 management API v2
type Auth0Client struct {
	tokens     TokenProvider
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// NewAuth0Client creates a client for https://<domain>/api/v2
func NewAuth0Client(domain string, tokens TokenProvider, logger *slog.Logger) *Auth0Client {
	return newAuth0Client("https://"+strings.TrimSuffix(domain, "/"), tokens, logger)
}

func newAuth0Client(baseURL string, tokens TokenProvider, logger *slog.Logger) *Auth0Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Auth0Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type auth0User struct {
	CreatedAt string `json:"created_at"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Picture   string `json:"picture"`
}

func (c *Auth0Client) LookupUser(ctx context.Context, username string) (*User, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("username:%q", username))
	q.Set("search_engine", "v3")

	resp, err := c.do(ctx, http.MethodGet, "/api/v2/users?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close identity provider response", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp, "lookup user")
	}

	var users []auth0User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("failed to decode user search response: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}

	u := users[0]
	return &User{
		CreatedTime: u.CreatedAt,
		Username:    u.Username,
		Email:       u.Email,
		Picture:     u.Picture,
	}, nil
}

func (c *Auth0Client) UpdatePicture(ctx context.Context, userID, pictureURL string) error {
	body, err := json.Marshal(map[string]interface{}{
		"user_metadata": map[string]string{"picture": pictureURL},
	})
	if err != nil {
		return fmt.Errorf("failed to encode user metadata: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPatch, "/api/v2/users/"+url.PathEscape(userID), body)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close identity provider response", "error", closeErr)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrUserNotFound
	case resp.StatusCode >= 300:
		return c.statusError(resp, "update picture")
	}
	return nil
}

func (c *Auth0Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider request failed: %w", err)
	}
	return resp, nil
}

// statusError reads a bounded preview of an error body for the log
func (c *Auth0Client) statusError(resp *http.Response, op string) error {
	preview, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
	c.logger.Error("identity provider returned error",
		"operation", op,
		"status", resp.StatusCode,
		"body", string(preview))
	return fmt.Errorf("identity provider %s failed: HTTP %d", op, resp.StatusCode)
}
