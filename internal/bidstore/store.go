package bidstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"
)

// BidDB defines the append-only bid log for the bid service. Bids are
// never mutated or deleted; the log is the authority for price and winner.
type BidDB interface {
	RecordBid(ctx context.Context, b models.Bid) (models.Bid, error)
	// BidsForAuction returns bids ordered by amount descending, then
	// timestamp descending.
	BidsForAuction(ctx context.Context, auctionID int64) ([]models.Bid, error)
	// BidsForUser returns a user's bids ordered by timestamp descending.
	BidsForUser(ctx context.Context, userID int64) ([]models.Bid, error)
	// HighestBid returns the bid with the maximum amount; ties go to the
	// earliest timestamp (first bid at that price wins). Returns ErrNoBids
	// when the auction has no bids.
	HighestBid(ctx context.Context, auctionID int64) (models.Bid, error)
}

// MemoryStore is a concurrency-safe in-memory BidDB used for tests and
// for running the service without a database.
type MemoryStore struct {
	mu     sync.RWMutex
	bids   map[int64][]models.Bid // auctionID -> bids in record order
	byUser map[int64][]models.Bid
	nextID int64
}

// NewMemoryStore creates an empty in-memory bid store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bids:   make(map[int64][]models.Bid),
		byUser: make(map[int64][]models.Bid),
	}
}

func (s *MemoryStore) RecordBid(_ context.Context, b models.Bid) (models.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	b.ID = s.nextID
	s.bids[b.AuctionID] = append(s.bids[b.AuctionID], b)
	s.byUser[b.UserID] = append(s.byUser[b.UserID], b)
	return b, nil
}

func (s *MemoryStore) BidsForAuction(_ context.Context, auctionID int64) ([]models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]models.Bid(nil), s.bids[auctionID]...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount == out[j].Amount {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].Amount > out[j].Amount
	})
	return out, nil
}

func (s *MemoryStore) BidsForUser(_ context.Context, userID int64) ([]models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := append([]models.Bid(nil), s.byUser[userID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *MemoryStore) HighestBid(_ context.Context, auctionID int64) (models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := s.bids[auctionID]
	if len(bids) == 0 {
		return models.Bid{}, fmt.Errorf("highest bid for auction %d: %w", auctionID, auctionerrors.ErrNoBids)
	}

	highest := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > highest.Amount || (b.Amount == highest.Amount && b.Timestamp.Before(highest.Timestamp)) {
			highest = b
		}
	}
	return highest, nil
}
