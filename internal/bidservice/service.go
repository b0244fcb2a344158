package bidservice

import (
	"context"
	"fmt"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/bidstore"
	"auction-platform/internal/models"
	"auction-platform/utils"
)

// AuctionGateway is the bid service's view of the auction service.
type AuctionGateway interface {
	GetAuction(ctx context.Context, auctionID int64) (models.Auction, error)
	UpdatePrice(ctx context.Context, auctionID int64, newPrice float64) error
}

// BidService validates and records bids against the remote auction state.
type BidService struct {
	repo        bidstore.BidDB
	auctions    AuctionGateway
	syncTimeout time.Duration
	now         func() time.Time
}

// NewBidService creates a new BidService instance.
func NewBidService(repo bidstore.BidDB, auctions AuctionGateway, syncTimeout time.Duration) *BidService {
	return &BidService{
		repo:        repo,
		auctions:    auctions,
		syncTimeout: syncTimeout,
		now:         time.Now,
	}
}

// PlaceBid validates a bid against the auction's current state and
// appends it to the bid log. Preconditions run in order; the first
// failure wins. After the bid is recorded a best-effort price-sync
// callback pushes the new current price to the auction service. The
// bid record is the source of truth and the cached price may lag, so a
// callback failure never fails the bid.
func (s *BidService) PlaceBid(ctx context.Context, auctionID, bidderID int64, amount float64) (models.Bid, error) {
	if amount <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w: non-positive bid amount", auctionerrors.ErrValidation)
	}

	auction, err := s.auctions.GetAuction(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: resolve auction %d: %w", auctionID, err)
	}

	if auction.Status != models.StatusLive {
		return models.Bid{}, fmt.Errorf("service: auction %d is %s: %w", auctionID, auction.Status, auctionerrors.ErrInvalidState)
	}

	if amount <= auction.CurrentPrice {
		return models.Bid{}, fmt.Errorf("service: %w: current price is %.2f", auctionerrors.ErrPriceTooLow, auction.CurrentPrice)
	}

	if bidderID == auction.OwnerID {
		return models.Bid{}, fmt.Errorf("service: %w", auctionerrors.ErrSelfBid)
	}

	bid := models.Bid{
		AuctionID: auctionID,
		UserID:    bidderID,
		Amount:    amount,
		Timestamp: s.now().UTC(),
	}

	bid, err = s.repo.RecordBid(ctx, bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: record bid for auction %d: %w", auctionID, err)
	}

	s.syncPrice(auctionID, amount)

	return bid, nil
}

// syncPrice pushes the accepted amount as the auction's new cached
// price. Detached from the request context so a client disconnect does
// not abort the callback.
func (s *BidService) syncPrice(auctionID int64, amount float64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.syncTimeout)
	defer cancel()

	if err := s.auctions.UpdatePrice(ctx, auctionID, amount); err != nil {
		utils.Warn("price sync failed, cached price will lag the bid log", map[string]any{
			"auction_id": auctionID,
			"amount":     amount,
			"error":      err.Error(),
		})
	}
}

// HighestBid returns the winning bid so far for an auction.
// Returns ErrNoBids when the auction has no bids.
func (s *BidService) HighestBid(ctx context.Context, auctionID int64) (models.Bid, error) {
	bid, err := s.repo.HighestBid(ctx, auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: highest bid for auction %d: %w", auctionID, err)
	}
	return bid, nil
}

// BidsForAuction returns all bids for an auction, highest first.
func (s *BidService) BidsForAuction(ctx context.Context, auctionID int64) ([]models.Bid, error) {
	bids, err := s.repo.BidsForAuction(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: bids for auction %d: %w", auctionID, err)
	}
	return bids, nil
}

// BidsForUser returns a user's bids, newest first.
func (s *BidService) BidsForUser(ctx context.Context, userID int64) ([]models.Bid, error) {
	bids, err := s.repo.BidsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: bids for user %d: %w", userID, err)
	}
	return bids, nil
}
