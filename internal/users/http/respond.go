package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lumenasoft/usersvc/internal/users/domain"
	"github.com/lumenasoft/usersvc/internal/users/service"
	"github.com/lumenasoft/usersvc/internal/users/store"
	"github.com/lumenasoft/usersvc/pkg/httpx"
	"github.com/lumenasoft/usersvc/pkg/slogx"
	"github.com/lumenasoft/usersvc/pkg/userapi"
)

// toAPIUser maps a domain record onto the wire representation. The password
// hash is dropped here and never serialized.
func toAPIUser(u domain.User) userapi.User {
	return userapi.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAPIUsers(users []domain.User) []userapi.User {
	out := make([]userapi.User, len(users))
	for i, u := range users {
		out[i] = toAPIUser(u)
	}
	return out
}

func writeError(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, userapi.Envelope{
		Success: false,
		Error:   msg,
	})
}

// writeServiceError translates service and store errors into the envelope
// taxonomy: validation 400, conflict 409, not found 404, auth failure 401,
// anything else 500 with the underlying error text embedded.
func writeServiceError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	log := slogx.FromContext(ctx)

	switch {
	case service.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrEmailTakenByOther):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserInactive),
		errors.Is(err, service.ErrUserNotFoundOrInactive):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		log.Error("operation failed", "op", op, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to %s: %v", op, err))
	}
}
