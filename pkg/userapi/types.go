package userapi

import (
	"encoding/json"
	"time"
)

// Envelope is the uniform response wrapper used for every endpoint:
// {success, data?, count?, message?, error?}.
type Envelope struct {
	// Success reports whether the operation succeeded.
	Success bool `json:"success"`

	// Data carries the operation result (a user, a list of users, tokens).
	Data any `json:"data,omitempty"`

	// Count is the number of records in Data for list responses.
	Count *int `json:"count,omitempty"`

	// Message is a human-readable success message.
	Message string `json:"message,omitempty"`

	// Error is a human-readable error message; set only when Success is false.
	Error string `json:"error,omitempty"`
}

// User is the external representation of a user record. The password hash is
// deliberately not part of this type; it never crosses the wire.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int64    `json:"age"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPayload is the request body for create, register, and update
// operations. Pointer fields distinguish "absent" from "zero"; Age is kept
// raw so the server can accept a JSON number, a numeric string, or an
// explicit null (which clears the stored age on update).
type UserPayload struct {
	Name     *string         `json:"name,omitempty"`
	Email    *string         `json:"email,omitempty"`
	Password *string         `json:"password,omitempty"`
	Age      json.RawMessage `json:"age,omitempty"`
	IsActive *bool           `json:"is_active,omitempty"`
}

// LoginRequest is the request body for the login endpoint.
type LoginRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// AuthData is the data payload returned by register and login.
type AuthData struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshData is the data payload returned by the refresh endpoint.
type RefreshData struct {
	AccessToken string `json:"access_token"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// String helpers for building payloads without temporary variables.

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// AgeNumber encodes n as a raw JSON number for UserPayload.Age.
func AgeNumber(n int64) json.RawMessage {
	raw, _ := json.Marshal(n)
	return raw
}
