package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/lumenasoft/usersvc/internal/users/service"
	"github.com/lumenasoft/usersvc/internal/users/store"
	"github.com/lumenasoft/usersvc/pkg/httpx"
	"github.com/lumenasoft/usersvc/pkg/jwtx"
	"github.com/lumenasoft/usersvc/pkg/userapi"
)

// AuthHandler implements registration, login, token refresh, identity
// lookup, and the stateless logout.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register account
//	@Description	Creates a user through the same validation path as user creation and returns an access/refresh token pair.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		userapi.UserPayload	true	"name, email, password, age?"
//	@Success		201		{object}	userapi.Envelope	"success, data {user, access_token, refresh_token}, message"
//	@Failure		400		{object}	userapi.Envelope	"validation failure"
//	@Failure		409		{object}	userapi.Envelope	"email already registered"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	user, pair, err := h.AuthService.Register(ctx, payload)
	if err != nil {
		writeServiceError(ctx, w, "register user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userapi.Envelope{
		Success: true,
		Data: userapi.AuthData{
			User:         toAPIUser(user),
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
		Message: "user registered successfully",
	})
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Login
//	@Description	Verifies email and password; inactive accounts are rejected. Returns the user with a token pair.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		userapi.LoginRequest	true	"email, password"
//	@Success		200		{object}	userapi.Envelope		"success, data {user, access_token, refresh_token}, message"
//	@Failure		400		{object}	userapi.Envelope		"missing email or password"
//	@Failure		401		{object}	userapi.Envelope		"invalid credentials or inactive account"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req userapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}
	if req.Email == nil || req.Password == nil {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, pair, err := h.AuthService.Login(ctx, *req.Email, *req.Password)
	if err != nil {
		writeServiceError(ctx, w, "login", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userapi.Envelope{
		Success: true,
		Data: userapi.AuthData{
			User:         toAPIUser(user),
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		},
		Message: "login successful",
	})
}

// HandleRefresh handles POST /v1/auth/refresh
//
//	@Summary		Refresh access token
//	@Description	Requires a refresh token. Issues a new access token if the user still exists and is active.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	userapi.Envelope	"success, data {access_token}, message"
//	@Failure		401	{object}	userapi.Envelope	"wrong token type, unknown or inactive user"
//	@Router			/v1/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if httpx.TokenTypeFromContext(ctx) != jwtx.TokenTypeRefresh {
		writeError(w, http.StatusUnauthorized, "refresh token required")
		return
	}

	access, err := h.AuthService.Refresh(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		writeServiceError(ctx, w, "refresh token", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userapi.Envelope{
		Success: true,
		Data:    userapi.RefreshData{AccessToken: access},
		Message: "token refreshed successfully",
	})
}

// HandleMe handles GET /v1/auth/me
//
//	@Summary		Current user
//	@Description	Returns the user identified by the access token.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	userapi.Envelope	"success, data (user)"
//	@Failure		404	{object}	userapi.Envelope	"user no longer exists"
//	@Router			/v1/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if httpx.TokenTypeFromContext(ctx) != jwtx.TokenTypeAccess {
		writeError(w, http.StatusUnauthorized, "access token required")
		return
	}

	user, err := h.AuthService.CurrentUser(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeServiceError(ctx, w, "fetch current user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userapi.Envelope{
		Success: true,
		Data:    toAPIUser(user),
	})
}

// HandleLogout handles POST /v1/auth/logout
//
//	@Summary		Logout
//	@Description	Stateless logout; no token blacklist. The client discards its tokens.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	userapi.Envelope	"success, message"
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if httpx.TokenTypeFromContext(r.Context()) != jwtx.TokenTypeAccess {
		writeError(w, http.StatusUnauthorized, "access token required")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userapi.Envelope{
		Success: true,
		Message: "logout successful",
	})
}
