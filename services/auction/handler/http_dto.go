package handler

import (
	"time"

	"auction-platform/internal/auctionservice"
	"auction-platform/internal/models"
)

// Request/Response DTOs
type CreateAuctionRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	StartingPrice float64   `json:"starting_price" binding:"required,gt=0"`
	EndsAt        time.Time `json:"ends_at" binding:"required"`
}

type CreateAuctionResponse struct {
	AuctionID     int64   `json:"auction_id"`
	Title         string  `json:"title"`
	StartingPrice float64 `json:"starting_price"`
}

type AuctionResponse struct {
	Auction models.Auction `json:"auction"`
}

type AuctionListResponse struct {
	Auctions []models.Auction `json:"auctions"`
}

type UpdatePriceRequest struct {
	NewPrice float64 `json:"new_price" binding:"required,gt=0"`
}

type UpdatePriceResponse struct {
	AuctionID int64   `json:"auction_id"`
	NewPrice  float64 `json:"new_price"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateStatusResponse struct {
	AuctionID int64  `json:"auction_id"`
	Status    string `json:"status"`
}

type SettleResponse struct {
	AuctionID     int64    `json:"auction_id"`
	Status        string   `json:"status"`
	WinnerID      *int64   `json:"winner_id"`
	WinningAmount *float64 `json:"winning_amount"`
}

// WinnerResponse carries a null winner while the auction is undecided.
type WinnerResponse struct {
	Winner *auctionservice.Winner `json:"winner"`
	Status string                 `json:"status"`
}
