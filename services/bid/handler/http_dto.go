package handler

import "auction-platform/internal/models"

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID int64   `json:"auction_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

type PlaceBidResponse struct {
	BidID     int64   `json:"bid_id"`
	AuctionID int64   `json:"auction_id"`
	UserID    int64   `json:"user_id"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
}

// HighestBidResponse carries null when the auction has no bids yet.
type HighestBidResponse struct {
	HighestBid *models.Bid `json:"highest_bid"`
}

type BidListResponse struct {
	Bids []models.Bid `json:"bids"`
}
