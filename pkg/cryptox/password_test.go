package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	t.Run("round trip verifies", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		require.NotEqual(t, "correct horse battery staple", hash)

		require.NoError(t, VerifyPassword("correct horse battery staple", hash))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		first, err := HashPassword("secret123")
		require.NoError(t, err)
		second, err := HashPassword("secret123")
		require.NoError(t, err)

		require.NotEqual(t, first, second)
		require.NoError(t, VerifyPassword("secret123", first))
		require.NoError(t, VerifyPassword("secret123", second))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		hash, err := HashPassword("secret123")
		require.NoError(t, err)

		require.ErrorIs(t, VerifyPassword("secret124", hash), ErrPasswordMismatch)
	})

	t.Run("garbage hash fails", func(t *testing.T) {
		require.Error(t, VerifyPassword("secret123", "not-a-bcrypt-hash"))
	})
}
