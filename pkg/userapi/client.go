package userapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is a typed HTTP client for the user service. The zero token is
// fine for unauthenticated deployments; WithToken returns a copy that sends
// a bearer token on every request.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that authenticates with the given
// bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// ListUsers returns all users and the reported count.
func (c *Client) ListUsers(ctx context.Context) ([]User, int, error) {
	env, err := c.do(ctx, http.MethodGet, "/v1/users", nil)
	if err != nil {
		return nil, 0, err
	}

	var users []User
	if err := json.Unmarshal(env.Data, &users); err != nil {
		return nil, 0, fmt.Errorf("userapi: decoding user list: %w", err)
	}

	count := len(users)
	if env.Count != nil {
		count = *env.Count
	}
	return users, count, nil
}

// GetUser fetches a single user by id.
func (c *Client) GetUser(ctx context.Context, id int64) (User, error) {
	env, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/users/%d", id), nil)
	if err != nil {
		return User{}, err
	}
	return decodeUser(env.Data)
}

// CreateUser creates a user via the admin-style creation endpoint.
func (c *Client) CreateUser(ctx context.Context, payload UserPayload) (User, error) {
	env, err := c.do(ctx, http.MethodPost, "/v1/users", payload)
	if err != nil {
		return User{}, err
	}
	return decodeUser(env.Data)
}

// UpdateUser applies a partial update; only fields set in payload change.
func (c *Client) UpdateUser(ctx context.Context, id int64, payload UserPayload) (User, error) {
	env, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/users/%d", id), payload)
	if err != nil {
		return User{}, err
	}
	return decodeUser(env.Data)
}

// DeleteUser removes a user and returns the snapshot of the deleted record.
func (c *Client) DeleteUser(ctx context.Context, id int64) (User, error) {
	env, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/users/%d", id), nil)
	if err != nil {
		return User{}, err
	}
	return decodeUser(env.Data)
}

// Register creates an account and returns the new user with token pair.
func (c *Client) Register(ctx context.Context, payload UserPayload) (*AuthData, error) {
	env, err := c.do(ctx, http.MethodPost, "/v1/auth/register", payload)
	if err != nil {
		return nil, err
	}
	return decodeAuthData(env.Data)
}

// Login authenticates with email and password, returning the user and tokens.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthData, error) {
	req := LoginRequest{Email: &email, Password: &password}
	env, err := c.do(ctx, http.MethodPost, "/v1/auth/login", req)
	if err != nil {
		return nil, err
	}
	return decodeAuthData(env.Data)
}

// Refresh mints a new access token. The client must hold a refresh token.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/v1/auth/refresh", nil)
	if err != nil {
		return "", err
	}

	var data RefreshData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("userapi: decoding refresh response: %w", err)
	}
	return data.AccessToken, nil
}

// Me returns the user identified by the client's access token.
func (c *Client) Me(ctx context.Context) (User, error) {
	env, err := c.do(ctx, http.MethodGet, "/v1/auth/me", nil)
	if err != nil {
		return User{}, err
	}
	return decodeUser(env.Data)
}

// Logout tells the service to end the session. Token invalidation is
// client-side; the server responds with a stateless success.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/v1/auth/logout", nil)
	return err
}

// envelope mirrors Envelope with raw data for two-stage decoding.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("userapi: encoding request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("userapi: decoding response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}

	return &env, nil
}

func decodeUser(raw json.RawMessage) (User, error) {
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return User{}, fmt.Errorf("userapi: decoding user: %w", err)
	}
	return u, nil
}

func decodeAuthData(raw json.RawMessage) (*AuthData, error) {
	var data AuthData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("userapi: decoding auth response: %w", err)
	}
	return &data, nil
}
