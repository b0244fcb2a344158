package userservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/auth"
	"auction-platform/internal/userstore"

	"github.com/stretchr/testify/require"
)

func newTestService() (*UserService, *auth.Signer) {
	signer := auth.NewSigner("test-secret", "user-service", time.Hour)
	return NewUserService(userstore.NewMemoryStore(), signer), signer
}

// Tests Register, including email normalization and uniqueness.
func TestUserService_Register(t *testing.T) {
	service, signer := newTestService()

	t.Run("valid_registration", func(t *testing.T) {
		user, token, err := service.Register(context.Background(), "  Alice  ", "Alice@Example.COM", "secret123")
		require.NoError(t, err)
		require.NotZero(t, user.ID)
		require.Equal(t, "Alice", user.Name)
		require.Equal(t, "alice@example.com", user.Email)
		require.NotEmpty(t, user.PasswordHash)
		require.NotEqual(t, "secret123", user.PasswordHash)

		claims, err := signer.Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.UserID)
		require.Equal(t, "alice@example.com", claims.Email)
	})

	t.Run("duplicate_email_rejected", func(t *testing.T) {
		_, _, err := service.Register(context.Background(), "Alice Again", "alice@example.com", "othersecret")
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrEmailTaken), "got: %v", err)
	})

	t.Run("missing_fields_rejected", func(t *testing.T) {
		cases := []struct {
			name, userName, email, password string
		}{
			{"empty_name", "", "bob@example.com", "secret123"},
			{"empty_email", "Bob", "", "secret123"},
			{"empty_password", "Bob", "bob@example.com", ""},
			{"whitespace_name", "   ", "bob@example.com", "secret123"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, _, err := service.Register(context.Background(), tc.userName, tc.email, tc.password)
				require.Error(t, err)
				require.True(t, errors.Is(err, auctionerrors.ErrValidation), "got: %v", err)
			})
		}
	})
}

// Tests Login. Unknown email and wrong password must be
// indistinguishable to the caller.
func TestUserService_Login(t *testing.T) {
	service, signer := newTestService()

	registered, _, err := service.Register(context.Background(), "Bob", "bob@example.com", "secret123")
	require.NoError(t, err)

	t.Run("valid_credentials", func(t *testing.T) {
		user, token, err := service.Login(context.Background(), "Bob@Example.com ", "secret123")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)

		claims, err := signer.Verify(token)
		require.NoError(t, err)
		require.Equal(t, registered.ID, claims.UserID)
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, _, err := service.Login(context.Background(), "bob@example.com", "wrongpassword")
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidCredentials), "got: %v", err)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, _, err := service.Login(context.Background(), "nobody@example.com", "secret123")
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrInvalidCredentials), "got: %v", err)
	})

	t.Run("unknown_email_and_wrong_password_look_identical", func(t *testing.T) {
		_, _, errUnknown := service.Login(context.Background(), "nobody@example.com", "secret123")
		_, _, errWrong := service.Login(context.Background(), "bob@example.com", "wrongpassword")
		require.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}

// Tests GetUser.
func TestUserService_GetUser(t *testing.T) {
	service, _ := newTestService()

	registered, _, err := service.Register(context.Background(), "Carol", "carol@example.com", "secret123")
	require.NoError(t, err)

	t.Run("existing_user", func(t *testing.T) {
		user, err := service.GetUser(context.Background(), registered.ID)
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
		require.Equal(t, "carol@example.com", user.Email)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := service.GetUser(context.Background(), 9999)
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrUserNotFound), "got: %v", err)
	})
}
