package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	userhttp "github.com/lumenasoft/usersvc/internal/users/http"
	"github.com/lumenasoft/usersvc/internal/users/service"
	"github.com/lumenasoft/usersvc/internal/users/store/drivers/sqlite"
	"github.com/lumenasoft/usersvc/pkg/httpx"
	"github.com/lumenasoft/usersvc/pkg/jwtx"
	"github.com/lumenasoft/usersvc/pkg/slogx"
	"github.com/lumenasoft/usersvc/pkg/userapi"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-0123456789"
	testIssuer = "usersvc-test"
)

// TestMain raises the rate limits so the suite never trips them. The limits
// themselves are covered by the httpx package tests.
func TestMain(m *testing.M) {
	relaxed := httpx.RateLimitConfig{
		RequestsPerWindow: 10000,
		Window:            time.Minute,
		Burst:             10000,
	}
	httpx.StrictLimit = relaxed
	httpx.ModerateLimit = relaxed
	httpx.LenientLimit = relaxed

	os.Exit(m.Run())
}

// newTestServer boots the full router against an in-memory store and returns
// an unauthenticated API client pointed at it.
func newTestServer(t *testing.T, authDisabled bool) *userapi.Client {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{
		Service: "user-service",
		Version: "test",
		Env:     "test",
		Level:   "error",
	})

	signer := jwtx.NewHS256([]byte(testSecret), testIssuer)

	userService := &service.UserService{Store: st}
	authService := &service.AuthService{
		Users:      userService,
		Store:      st,
		Signer:     signer,
		AccessTTL:  jwtx.DefaultAccessTokenTTL,
		RefreshTTL: jwtx.DefaultRefreshTokenTTL,
	}

	router := userhttp.NewRouter(signer, "test", authDisabled, st, logger)
	router.UserService = userService
	router.AuthService = authService
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return userapi.NewClient(srv.URL)
}

// registerUser registers an account and returns the auth data plus a client
// authenticated with the fresh access token.
func registerUser(t *testing.T, client *userapi.Client, name, email string) (*userapi.AuthData, *userapi.Client) {
	t.Helper()

	auth, err := client.Register(context.Background(), userapi.UserPayload{
		Name:     userapi.Str(name),
		Email:    userapi.Str(email),
		Password: userapi.Str("secret123"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, auth.AccessToken)
	require.NotEmpty(t, auth.RefreshToken)

	return auth, client.WithToken(auth.AccessToken)
}

func decodeJSONBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()

	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func requireAPIError(t *testing.T, err error, status int, msg string) {
	t.Helper()

	var apiErr *userapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.Status)
	if msg != "" {
		require.Equal(t, msg, apiErr.Message)
	}
}
