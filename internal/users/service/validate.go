package service

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/lumenasoft/usersvc/pkg/userapi"
)

const (
	// MinPasswordLength is enforced by validation, not by the hasher.
	MinPasswordLength = 6

	MinAge = 0
	MaxAge = 150
)

// validatePayload applies the full rule set shared by admin-style creation
// and self-registration. Update uses a reduced inline variant that only
// checks the fields actually supplied (see UpdateUser).
func validatePayload(p *userapi.UserPayload, requirePassword bool) error {
	if p == nil || isEmptyPayload(p) {
		return validationError("no data provided")
	}

	if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
		return validationError("name is required")
	}

	if p.Email == nil || strings.TrimSpace(*p.Email) == "" {
		return validationError("email is required")
	}
	// Minimal format check on purpose; anything with an @ passes.
	if !strings.Contains(*p.Email, "@") {
		return validationError("email must be a valid email address")
	}

	if requirePassword {
		if p.Password == nil || *p.Password == "" {
			return validationError("password is required")
		}
		if len(*p.Password) < MinPasswordLength {
			return validationError("password must be at least 6 characters")
		}
	}

	if _, err := parseAge(p.Age); err != nil {
		return err
	}

	return nil
}

// isEmptyPayload reports whether no field of the payload was supplied.
func isEmptyPayload(p *userapi.UserPayload) bool {
	return p.Name == nil &&
		p.Email == nil &&
		p.Password == nil &&
		len(bytes.TrimSpace(p.Age)) == 0 &&
		p.IsActive == nil
}

// parseAge interprets the raw age value from a payload. Absent and explicit
// null both yield a nil age. A JSON number or a numeric string is accepted,
// mirroring the loose integer coercion of the HTTP clients this service
// inherited; anything else is a validation error, as is a value outside
// [0,150].
func parseAge(raw json.RawMessage) (*int64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}

	var age int64
	if err := json.Unmarshal(trimmed, &age); err != nil {
		// Not a JSON integer; tolerate a numeric string like "28".
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, validationError("age must be a valid number")
		}
		age, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, validationError("age must be a valid number")
		}
	}

	if age < MinAge || age > MaxAge {
		return nil, validationError("age must be between 0 and 150")
	}

	return &age, nil
}
