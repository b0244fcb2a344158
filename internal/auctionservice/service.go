package auctionservice

import (
	"context"
	"fmt"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/auctionstore"
	"auction-platform/internal/models"
	"auction-platform/utils"
)

// HighestBidSource is the coordinator's view of the bid service. A nil
// bid with a nil error means the bid service answered "no bids"; an
// ErrUnavailable error means it could not be asked; the two must never
// be conflated during settlement.
type HighestBidSource interface {
	HighestBid(ctx context.Context, auctionID int64) (*models.Bid, error)
}

// WinnerNotifier announces a settled winner. Fire-and-forget: failures
// are logged and never roll back a settlement.
type WinnerNotifier interface {
	NotifyWinner(ctx context.Context, auction models.Auction, winnerID int64, amount float64) error
}

// SettleResult reports the outcome of a settlement call.
type SettleResult struct {
	Status        models.AuctionStatus
	WinnerID      *int64
	WinningAmount *float64
	// Transitioned is true only for the call that actually closed the
	// auction. Repeat calls and lost races return the stored winner with
	// Transitioned false and emit no notification.
	Transitioned bool
	Notified     bool
}

// SweepResult reports the counts of a sweep tick.
type SweepResult struct {
	Activated int `json:"activated"`
	Closed    int `json:"closed"`
	Notified  int `json:"notified"`
}

// Winner describes a settled auction's winning bid.
type Winner struct {
	AuctionID     int64   `json:"auction_id"`
	AuctionTitle  string  `json:"auction_title"`
	WinnerID      int64   `json:"winner_id"`
	WinningAmount float64 `json:"winning_amount"`
}

// WinnerLookup is the result of a winner query. A non-ended status with
// a nil winner means "not yet decided", which is not an error.
type WinnerLookup struct {
	Status models.AuctionStatus
	Winner *Winner
}

// AuctionService owns the auction state machine (pending -> live ->
// ended), the cached-price update channel and the settlement protocol.
// The auction's current price is a projection of the bid log; settlement
// always re-derives the winner from the bid service rather than trusting
// the cache.
type AuctionService struct {
	repo         auctionstore.AuctionDB
	bids         HighestBidSource
	notifier     WinnerNotifier
	queryTimeout time.Duration
	now          func() time.Time
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(repo auctionstore.AuctionDB, bids HighestBidSource, notifier WinnerNotifier, queryTimeout time.Duration) *AuctionService {
	return &AuctionService{
		repo:         repo,
		bids:         bids,
		notifier:     notifier,
		queryTimeout: queryTimeout,
		now:          time.Now,
	}
}

// CreateAuction creates a pending auction with the cached current price
// initialized to the starting price.
func (s *AuctionService) CreateAuction(ctx context.Context, ownerID int64, title, description string, startingPrice float64, endsAt time.Time) (models.Auction, error) {
	if title == "" {
		return models.Auction{}, fmt.Errorf("service: %w: empty title", auctionerrors.ErrValidation)
	}
	if startingPrice <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w: starting price must be positive", auctionerrors.ErrValidation)
	}
	if !endsAt.After(s.now()) {
		return models.Auction{}, fmt.Errorf("service: %w: ends_at must be in the future", auctionerrors.ErrValidation)
	}

	auction := models.Auction{
		Title:         title,
		Description:   description,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		Status:        models.StatusPending,
		EndsAt:        endsAt,
		OwnerID:       ownerID,
		CreatedAt:     s.now().UTC(),
	}

	auction, err := s.repo.CreateAuction(ctx, auction)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: create auction: %w", err)
	}
	return auction, nil
}

// GetAuction returns a single auction.
func (s *AuctionService) GetAuction(ctx context.Context, id int64) (models.Auction, error) {
	return s.repo.GetAuction(ctx, id)
}

// ListAuctions returns auctions newest-first with an optional status
// filter; an unknown filter literal is a validation error.
func (s *AuctionService) ListAuctions(ctx context.Context, status models.AuctionStatus) ([]models.Auction, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("service: %w: unknown status %q", auctionerrors.ErrValidation, status)
	}
	return s.repo.ListAuctions(ctx, status)
}

// DeleteAuction removes an auction before settlement. Only the owner may
// delete, and never once the auction has ended.
func (s *AuctionService) DeleteAuction(ctx context.Context, id, requesterID int64) error {
	auction, err := s.repo.GetAuction(ctx, id)
	if err != nil {
		return err
	}
	if auction.OwnerID != requesterID {
		return fmt.Errorf("service: delete auction %d: %w", id, auctionerrors.ErrForbidden)
	}
	if auction.Status == models.StatusEnded {
		return fmt.Errorf("service: auction %d already settled: %w", id, auctionerrors.ErrInvalidState)
	}
	return s.repo.DeleteAuction(ctx, id)
}

// UpdateCurrentPrice sets the cached current price unconditionally. This
// is the trusted internal callback channel from the bid service; the bid
// service's own validation is the only monotonicity enforcement point,
// so no re-validation happens here. Callers outside the service network
// reaching this channel is a known hardening gap.
func (s *AuctionService) UpdateCurrentPrice(ctx context.Context, id int64, newPrice float64) error {
	if err := s.repo.UpdateCurrentPrice(ctx, id, newPrice); err != nil {
		return fmt.Errorf("service: update price: %w", err)
	}
	return nil
}

// Activate transitions a pending auction to live. Activating an already
// live auction is a no-op; an ended auction cannot be reopened.
func (s *AuctionService) Activate(ctx context.Context, id int64) (bool, error) {
	transitioned, err := s.repo.ActivateAuction(ctx, id)
	if err != nil {
		return false, fmt.Errorf("service: activate auction %d: %w", id, err)
	}
	if !transitioned {
		auction, err := s.repo.GetAuction(ctx, id)
		if err != nil {
			return false, err
		}
		if auction.Status == models.StatusEnded {
			return false, fmt.Errorf("service: auction %d has ended: %w", id, auctionerrors.ErrInvalidState)
		}
	}
	return transitioned, nil
}

// ChangeStatus drives the state machine from the admin status endpoint.
// The only forward moves are pending->live (activate) and live->ended
// (close via settlement); everything else is invalid.
func (s *AuctionService) ChangeStatus(ctx context.Context, id int64, status models.AuctionStatus) error {
	if !status.Valid() {
		return fmt.Errorf("service: %w: unknown status %q", auctionerrors.ErrValidation, status)
	}

	switch status {
	case models.StatusPending:
		auction, err := s.repo.GetAuction(ctx, id)
		if err != nil {
			return err
		}
		if auction.Status != models.StatusPending {
			return fmt.Errorf("service: auction %d cannot move back to pending: %w", id, auctionerrors.ErrInvalidState)
		}
		return nil
	case models.StatusLive:
		_, err := s.Activate(ctx, id)
		return err
	default:
		_, err := s.Settle(ctx, id)
		return err
	}
}

// Settle closes a live auction and records its winner. Idempotent: an
// already-ended auction returns the stored winner without a second
// notification. The winner is re-derived from the bid service's log,
// never from the cached current price. A transport failure asking for
// the highest bid aborts with ErrSettlementIncomplete and the auction
// stays live; downstream unavailability must not settle as "no bidders".
//
// The highest-bid read and the close write are not atomic across the
// service boundary: a bid validated in the last instant before closure
// may miss the winner computation. Accepted trade-off in place of
// distributed locking.
func (s *AuctionService) Settle(ctx context.Context, id int64) (SettleResult, error) {
	auction, err := s.repo.GetAuction(ctx, id)
	if err != nil {
		return SettleResult{}, err
	}

	switch auction.Status {
	case models.StatusEnded:
		return SettleResult{
			Status:        models.StatusEnded,
			WinnerID:      auction.WinnerID,
			WinningAmount: auction.WinningAmount,
		}, nil
	case models.StatusPending:
		return SettleResult{}, fmt.Errorf("service: auction %d is not live: %w", id, auctionerrors.ErrInvalidState)
	}

	queryCtx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	highest, err := s.bids.HighestBid(queryCtx, id)
	if err != nil {
		return SettleResult{}, fmt.Errorf("service: settle auction %d: %w: %w", id, auctionerrors.ErrSettlementIncomplete, err)
	}

	var winnerID *int64
	var winningAmount *float64
	if highest != nil {
		winnerID = &highest.UserID
		winningAmount = &highest.Amount
	}

	transitioned, err := s.repo.CloseAuction(ctx, id, winnerID, winningAmount)
	if err != nil {
		return SettleResult{}, fmt.Errorf("service: settle auction %d: %w", id, err)
	}
	if !transitioned {
		// Lost the race against a concurrent settle; its result stands.
		settled, err := s.repo.GetAuction(ctx, id)
		if err != nil {
			return SettleResult{}, err
		}
		return SettleResult{
			Status:        settled.Status,
			WinnerID:      settled.WinnerID,
			WinningAmount: settled.WinningAmount,
		}, nil
	}

	result := SettleResult{
		Status:        models.StatusEnded,
		WinnerID:      winnerID,
		WinningAmount: winningAmount,
		Transitioned:  true,
	}
	if highest != nil {
		s.notifyWinner(auction, highest.UserID, highest.Amount)
		result.Notified = true
	}
	return result, nil
}

// notifyWinner emits the winner announcement. Detached from the request
// context; a failed notification is logged and never retried.
func (s *AuctionService) notifyWinner(auction models.Auction, winnerID int64, amount float64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	if err := s.notifier.NotifyWinner(ctx, auction, winnerID, amount); err != nil {
		utils.Error("winner notification failed", map[string]any{
			"auction_id": auction.ID,
			"winner_id":  winnerID,
			"error":      err.Error(),
		})
	}
}

// Sweep activates pending auctions and settles expired live ones. Every
// pending auction goes live on each tick: the platform models "live
// immediately after creation", kept here as an explicit policy rather
// than buried in creation logic. Safe to run concurrently with itself
// and with manual settles; the store's conditional transitions make each
// close happen once, so overlapping sweeps converge with at most one
// notification per auction.
func (s *AuctionService) Sweep(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	pending, err := s.repo.ListAuctions(ctx, models.StatusPending)
	if err != nil {
		return result, fmt.Errorf("service: sweep: %w", err)
	}
	for _, auction := range pending {
		transitioned, err := s.repo.ActivateAuction(ctx, auction.ID)
		if err != nil {
			utils.Warn("sweep: activation failed", map[string]any{"auction_id": auction.ID, "error": err.Error()})
			continue
		}
		if transitioned {
			result.Activated++
		}
	}

	expired, err := s.repo.ListExpiredLive(ctx, s.now())
	if err != nil {
		return result, fmt.Errorf("service: sweep: %w", err)
	}
	for _, auction := range expired {
		settled, err := s.Settle(ctx, auction.ID)
		if err != nil {
			// Includes ErrSettlementIncomplete: leave the auction live and
			// retry on the next tick.
			utils.Warn("sweep: settlement failed", map[string]any{"auction_id": auction.ID, "error": err.Error()})
			continue
		}
		if settled.Transitioned {
			result.Closed++
		}
		if settled.Notified {
			result.Notified++
		}
	}

	return result, nil
}

// GetWinner reports the winner of an auction. For auctions that have not
// ended the status is returned with no winner: "not yet decided" is a
// valid outcome, not an error.
func (s *AuctionService) GetWinner(ctx context.Context, id int64) (WinnerLookup, error) {
	auction, err := s.repo.GetAuction(ctx, id)
	if err != nil {
		return WinnerLookup{}, err
	}

	lookup := WinnerLookup{Status: auction.Status}
	if auction.Status == models.StatusEnded && auction.WinnerID != nil && auction.WinningAmount != nil {
		lookup.Winner = &Winner{
			AuctionID:     auction.ID,
			AuctionTitle:  auction.Title,
			WinnerID:      *auction.WinnerID,
			WinningAmount: *auction.WinningAmount,
		}
	}
	return lookup, nil
}
