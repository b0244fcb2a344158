package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Test token issue/verify round trip
func TestSigner_IssueAndVerify(t *testing.T) {
	t.Parallel()

	signer := NewSigner("test-secret", "user-service", time.Hour)

	token, err := signer.Issue(42, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "user-service", claims.Issuer)
	require.Equal(t, "42", claims.Subject)
}

// Test verification failure modes
func TestSigner_VerifyRejections(t *testing.T) {
	t.Parallel()

	signer := NewSigner("test-secret", "user-service", time.Hour)

	t.Run("wrong_secret", func(t *testing.T) {
		t.Parallel()

		other := NewSigner("different-secret", "user-service", time.Hour)
		token, err := other.Issue(42, "alice@example.com")
		require.NoError(t, err)

		_, err = signer.Verify(token)
		require.Error(t, err)
	})

	t.Run("expired_token", func(t *testing.T) {
		t.Parallel()

		expired := NewSigner("test-secret", "user-service", -time.Minute)
		token, err := expired.Issue(42, "alice@example.com")
		require.NoError(t, err)

		_, err = signer.Verify(token)
		require.Error(t, err)
	})

	t.Run("garbage_token", func(t *testing.T) {
		t.Parallel()

		_, err := signer.Verify("not.a.token")
		require.Error(t, err)
	})

	t.Run("empty_token", func(t *testing.T) {
		t.Parallel()

		_, err := signer.Verify("")
		require.Error(t, err)
	})
}
