package userservice

import (
	"context"
	"fmt"
	"strings"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/auth"
	"auction-platform/internal/models"
	"auction-platform/internal/userstore"
)

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

// UserService handles registration, login and user lookup.
type UserService struct {
	repo   userstore.UserDB
	tokens TokenIssuer
}

// NewUserService creates a new UserService instance.
func NewUserService(repo userstore.UserDB, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register creates a user and returns it with a fresh access token.
func (s *UserService) Register(ctx context.Context, name, email, password string) (models.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return models.User{}, "", fmt.Errorf("service: %w: name, email and password are required", auctionerrors.ErrValidation)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: register: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: login: %w", auctionerrors.ErrInvalidCredentials)
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: verify password: %w", err)
	}
	if !ok {
		return models.User{}, "", fmt.Errorf("service: login: %w", auctionerrors.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return models.User{}, "", fmt.Errorf("service: issue token: %w", err)
	}
	return user, token, nil
}

// GetUser returns a user by id.
func (s *UserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("service: get user %d: %w", id, err)
	}
	return user, nil
}
