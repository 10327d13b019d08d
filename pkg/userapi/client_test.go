package userapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumenasoft/usersvc/pkg/userapi"
	"github.com/stretchr/testify/require"
)

func canned(t *testing.T, status int, body string) *userapi.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return userapi.NewClient(srv.URL)
}

func TestClientDecodesEnvelope(t *testing.T) {
	t.Parallel()

	client := canned(t, http.StatusOK, `{
		"success": true,
		"data": [{"id": 1, "name": "Ana", "email": "ana@x.com", "age": null, "is_active": true}],
		"count": 1
	}`)

	users, count, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Len(t, users, 1)
	require.Equal(t, "Ana", users[0].Name)
	require.Nil(t, users[0].Age)
}

func TestClientSurfacesErrorEnvelope(t *testing.T) {
	t.Parallel()

	client := canned(t, http.StatusNotFound, `{"success": false, "error": "user not found"}`)

	_, err := client.GetUser(context.Background(), 42)
	require.True(t, userapi.IsNotFound(err))

	var apiErr *userapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "user not found", apiErr.Message)
}

func TestClientRejectsFalseSuccess(t *testing.T) {
	t.Parallel()

	// A 200 with success=false is still an error to callers.
	client := canned(t, http.StatusOK, `{"success": false, "error": "something odd"}`)

	_, _, err := client.ListUsers(context.Background())
	var apiErr *userapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "something odd", apiErr.Message)
}

func TestClientSendsBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": []}`))
	}))
	t.Cleanup(srv.Close)

	client := userapi.NewClient(srv.URL).WithToken("tok-123")
	_, _, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
}
