package app

import (
	"testing"
	"time"

	"github.com/lumenasoft/usersvc/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "usersvc", cfg.Issuer)
	require.Equal(t, jwtx.DefaultAccessTokenTTL, cfg.AccessTokenTTL)
	require.Equal(t, jwtx.DefaultRefreshTokenTTL, cfg.RefreshTokenTTL)
	require.False(t, cfg.AuthDisabled)
	require.Equal(t, "users.db", cfg.DatabaseFile)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("USERS_ISSUER", "my-issuer")
	t.Setenv("USERS_JWT_SECRET", "super-secret")
	t.Setenv("USERS_ACCESS_TOKEN_TTL", "15m")
	t.Setenv("USERS_AUTH_DISABLED", "true")
	t.Setenv("PORT", "9090")

	cfg := LoadConfig()

	require.Equal(t, "my-issuer", cfg.Issuer)
	require.Equal(t, "super-secret", cfg.JWTSecret)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	require.True(t, cfg.AuthDisabled)
	require.Equal(t, 9090, cfg.Port)
}

func TestDurationAcceptsPlainSeconds(t *testing.T) {
	t.Setenv("USERS_REFRESH_TOKEN_TTL", "3600")

	cfg := LoadConfig()
	require.Equal(t, time.Hour, cfg.RefreshTokenTTL)
}
