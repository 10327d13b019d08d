package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHS256SignVerify(t *testing.T) {
	t.Parallel()

	signer := NewHS256([]byte("test-secret"), "usersvc-test")
	now := time.Now().UTC()

	t.Run("round trip", func(t *testing.T) {
		claims := NewClaims(42, TokenTypeAccess, signer.Issuer(), time.Hour, now)
		raw, err := signer.Sign(claims)
		require.NoError(t, err)
		require.NotEmpty(t, raw)

		got, err := signer.Verify(raw)
		require.NoError(t, err)
		require.Equal(t, "42", got.Subject)
		require.Equal(t, TokenTypeAccess, got.TokenType)

		id, err := got.UserID()
		require.NoError(t, err)
		require.Equal(t, int64(42), id)
	})

	t.Run("refresh token type survives round trip", func(t *testing.T) {
		claims := NewClaims(7, TokenTypeRefresh, signer.Issuer(), 30*24*time.Hour, now)
		raw, err := signer.Sign(claims)
		require.NoError(t, err)

		got, err := signer.Verify(raw)
		require.NoError(t, err)
		require.Equal(t, TokenTypeRefresh, got.TokenType)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		claims := NewClaims(42, TokenTypeAccess, signer.Issuer(), time.Hour, now.Add(-2*time.Hour))
		raw, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = signer.Verify(raw)
		require.ErrorIs(t, err, ErrExpired)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := NewHS256([]byte("different-secret"), "usersvc-test")
		claims := NewClaims(42, TokenTypeAccess, "usersvc-test", time.Hour, now)
		raw, err := other.Sign(claims)
		require.NoError(t, err)

		_, err = signer.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidSig)
	})

	t.Run("wrong issuer rejected", func(t *testing.T) {
		claims := NewClaims(42, TokenTypeAccess, "someone-else", time.Hour, now)
		raw, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = signer.Verify(raw)
		require.ErrorIs(t, err, ErrIssuer)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := signer.Verify("not.a.token")
		require.ErrorIs(t, err, ErrMalformed)
	})
}

func TestClaimsUserID(t *testing.T) {
	t.Parallel()

	t.Run("non-numeric subject", func(t *testing.T) {
		c := Claims{}
		c.Subject = "alice"
		_, err := c.UserID()
		require.ErrorIs(t, err, ErrInvalidClaim)
	})

	t.Run("non-positive subject", func(t *testing.T) {
		c := Claims{}
		c.Subject = "0"
		_, err := c.UserID()
		require.ErrorIs(t, err, ErrInvalidClaim)
	})
}

func TestClaimsValidateExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	t.Run("valid window", func(t *testing.T) {
		c := NewClaims(1, TokenTypeAccess, "iss", time.Hour, now)
		require.NoError(t, c.ValidateExpiry())
	})

	t.Run("expired", func(t *testing.T) {
		c := NewClaims(1, TokenTypeAccess, "iss", time.Minute, now.Add(-time.Hour))
		require.ErrorIs(t, c.ValidateExpiry(), ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := NewClaims(1, TokenTypeAccess, "iss", time.Hour, now.Add(time.Hour))
		require.ErrorIs(t, c.ValidateExpiry(), ErrNotYetValid)
	})
}
