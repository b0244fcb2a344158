package userstore

import (
	"context"
	"fmt"
	"sync"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"
)

// UserDB defines user persistence for the user service.
type UserDB interface {
	// CreateUser inserts a new user; email must be unique.
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// MemoryStore is a concurrency-safe in-memory UserDB used for tests and
// for running the service without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[int64]models.User
	byEmail map[string]int64
	nextID  int64
}

// NewMemoryStore creates an empty in-memory user store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[int64]models.User),
		byEmail: make(map[string]int64),
	}
}

func (s *MemoryStore) CreateUser(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return models.User{}, fmt.Errorf("create user %s: %w", u.Email, auctionerrors.ErrEmailTaken)
	}

	s.nextID++
	u.ID = s.nextID
	s.users[u.ID] = u
	s.byEmail[u.Email] = u.ID
	return u, nil
}

func (s *MemoryStore) GetUser(_ context.Context, id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("get user %d: %w", id, auctionerrors.ErrUserNotFound)
	}
	return u, nil
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return models.User{}, fmt.Errorf("get user %s: %w", email, auctionerrors.ErrUserNotFound)
	}
	return s.users[id], nil
}
