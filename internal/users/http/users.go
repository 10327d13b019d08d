package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/lumenasoft/usersvc/internal/users/service"
	"github.com/lumenasoft/usersvc/pkg/httpx"
	"github.com/lumenasoft/usersvc/pkg/userapi"
)

// UsersHandler implements the five CRUD endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /v1/users
//
//	@Summary		List users
//	@Description	Returns all users. No pagination; count is the array length.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	userapi.Envelope	"success, data (users array), count"
//	@Failure		401	{object}	userapi.Envelope	"missing or invalid token"
//	@Failure		500	{object}	userapi.Envelope	"internal error"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		writeServiceError(ctx, w, "list users", err)
		return
	}

	count := len(users)
	httpx.WriteJSON(w, http.StatusOK, userapi.Envelope{
		Success: true,
		Data:    toAPIUsers(users),
		Count:   &count,
	})
}

// HandleGet handles GET /v1/users/{id}
//
//	@Summary		Get user by id
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int					true	"User id"
//	@Success		200	{object}	userapi.Envelope	"success, data (user)"
//	@Failure		404	{object}	userapi.Envelope	"user not found"
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.GetUser(ctx, id)
	if err != nil {
		writeServiceError(ctx, w, "fetch user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userapi.Envelope{
		Success: true,
		Data:    toAPIUser(user),
	})
}

// HandleCreate handles POST /v1/users
//
//	@Summary		Create user
//	@Description	Admin-style creation; password is required and stored hashed.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		userapi.UserPayload	true	"name, email, password, age?"
//	@Success		201		{object}	userapi.Envelope	"success, data (user), message"
//	@Failure		400		{object}	userapi.Envelope	"validation failure"
//	@Failure		409		{object}	userapi.Envelope	"email already registered"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.CreateUser(ctx, payload)
	if err != nil {
		writeServiceError(ctx, w, "create user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userapi.Envelope{
		Success: true,
		Data:    toAPIUser(user),
		Message: "user created successfully",
	})
}

// HandleUpdate handles PUT /v1/users/{id}
//
//	@Summary		Update user
//	@Description	Partial update; only supplied fields change. A supplied password is re-hashed.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		int					true	"User id"
//	@Param			request	body		userapi.UserPayload	true	"any subset of name, email, password, age, is_active"
//	@Success		200		{object}	userapi.Envelope	"success, data (user), message"
//	@Failure		400		{object}	userapi.Envelope	"empty body or validation failure"
//	@Failure		404		{object}	userapi.Envelope	"user not found"
//	@Failure		409		{object}	userapi.Envelope	"email belongs to another user"
//	@Router			/v1/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.UpdateUser(ctx, id, payload)
	if err != nil {
		writeServiceError(ctx, w, "update user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userapi.Envelope{
		Success: true,
		Data:    toAPIUser(user),
		Message: "user updated successfully",
	})
}

// HandleDelete handles DELETE /v1/users/{id}
//
//	@Summary		Delete user
//	@Description	Physically removes the user and returns a snapshot of the deleted record.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int					true	"User id"
//	@Success		200	{object}	userapi.Envelope	"success, data (deleted user snapshot), message"
//	@Failure		404	{object}	userapi.Envelope	"user not found"
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	snapshot, err := h.UserService.DeleteUser(ctx, id)
	if err != nil {
		writeServiceError(ctx, w, "delete user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, userapi.Envelope{
		Success: true,
		Data:    toAPIUser(snapshot),
		Message: "user deleted successfully",
	})
}

// pathID parses the {id} path segment. A non-numeric id cannot name a user,
// so it gets the same 404 as an unknown one.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, "user not found")
		return 0, false
	}
	return id, true
}

// decodePayload reads the JSON body. An empty body yields an empty payload
// so the service can apply its own ordering of not-found vs no-data errors.
func decodePayload(w http.ResponseWriter, r *http.Request) (*userapi.UserPayload, bool) {
	var payload userapi.UserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON in request body")
		return nil, false
	}
	return &payload, true
}
