package auctionstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"
)

// AuctionDB defines auction persistence for the auction service. The
// conditional transitions (Activate, Close) are the per-auction
// serialization boundary: concurrent sweeps and manual settles race on
// them, and exactly one caller observes transitioned=true.
type AuctionDB interface {
	CreateAuction(ctx context.Context, a models.Auction) (models.Auction, error)
	GetAuction(ctx context.Context, id int64) (models.Auction, error)
	// ListAuctions returns auctions newest-first, optionally filtered
	// by status ("" means all).
	ListAuctions(ctx context.Context, status models.AuctionStatus) ([]models.Auction, error)
	DeleteAuction(ctx context.Context, id int64) error
	// UpdateCurrentPrice sets the cached current price unconditionally.
	UpdateCurrentPrice(ctx context.Context, id int64, price float64) error
	// ActivateAuction transitions pending -> live. Returns false when the
	// auction was not pending (no-op).
	ActivateAuction(ctx context.Context, id int64) (bool, error)
	// CloseAuction transitions live -> ended, writing status, winner and
	// winning amount as one unit. Returns false when the auction was not
	// live, which means another caller settled it first.
	CloseAuction(ctx context.Context, id int64, winnerID *int64, winningAmount *float64) (bool, error)
	// ListExpiredLive returns live auctions whose end time has passed.
	ListExpiredLive(ctx context.Context, now time.Time) ([]models.Auction, error)
}

// MemoryStore is a concurrency-safe in-memory AuctionDB used for tests
// and for running the service without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions map[int64]models.Auction
	nextID   int64
}

// NewMemoryStore creates an empty in-memory auction store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{auctions: make(map[int64]models.Auction)}
}

func (s *MemoryStore) CreateAuction(_ context.Context, a models.Auction) (models.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	a.ID = s.nextID
	s.auctions[a.ID] = a
	return a, nil
}

func (s *MemoryStore) GetAuction(_ context.Context, id int64) (models.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[id]
	if !ok {
		return models.Auction{}, fmt.Errorf("get auction %d: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

func (s *MemoryStore) ListAuctions(_ context.Context, status models.AuctionStatus) ([]models.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Auction, 0, len(s.auctions))
	for _, a := range s.auctions {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) DeleteAuction(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[id]; !ok {
		return fmt.Errorf("delete auction %d: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	delete(s.auctions, id)
	return nil
}

func (s *MemoryStore) UpdateCurrentPrice(_ context.Context, id int64, price float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[id]
	if !ok {
		return fmt.Errorf("update price for auction %d: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	a.CurrentPrice = price
	s.auctions[id] = a
	return nil
}

func (s *MemoryStore) ActivateAuction(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[id]
	if !ok {
		return false, fmt.Errorf("activate auction %d: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != models.StatusPending {
		return false, nil
	}
	a.Status = models.StatusLive
	s.auctions[id] = a
	return true, nil
}

func (s *MemoryStore) CloseAuction(_ context.Context, id int64, winnerID *int64, winningAmount *float64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[id]
	if !ok {
		return false, fmt.Errorf("close auction %d: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if a.Status != models.StatusLive {
		return false, nil
	}
	a.Status = models.StatusEnded
	a.WinnerID = winnerID
	a.WinningAmount = winningAmount
	s.auctions[id] = a
	return true, nil
}

func (s *MemoryStore) ListExpiredLive(_ context.Context, now time.Time) ([]models.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Auction
	for _, a := range s.auctions {
		if a.Status == models.StatusLive && !a.EndsAt.After(now) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
