package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/auth"
	"auction-platform/internal/models"
	"auction-platform/services/helpers"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

type BidServiceInterface interface {
	PlaceBid(ctx context.Context, auctionID, bidderID int64, amount float64) (models.Bid, error)
	HighestBid(ctx context.Context, auctionID int64) (models.Bid, error)
	BidsForAuction(ctx context.Context, auctionID int64) ([]models.Bid, error)
	BidsForUser(ctx context.Context, userID int64) ([]models.Bid, error)
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bidderID, ok := auth.PrincipalID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "missing or invalid token")
		return
	}

	bid, err := h.service.PlaceBid(c.Request.Context(), req.AuctionID, bidderID, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"auction_id": req.AuctionID,
			"user_id":    bidderID,
			"amount":     req.Amount,
		})
		return
	}

	resp := PlaceBidResponse{
		BidID:     bid.ID,
		AuctionID: bid.AuctionID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		Timestamp: bid.Timestamp.UTC().Format(time.RFC3339Nano),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": bid.AuctionID,
		"user_id":    bid.UserID,
		"amount":     bid.Amount,
	})
}

// HighestBidHandler handles GET /bids/highest/:auction_id
func (h *BidHandler) HighestBidHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseIDParam(c, "auction_id")
	if !ok {
		return
	}

	bid, err := h.service.HighestBid(c.Request.Context(), auctionID)
	if err != nil {
		// "no bids yet" is a valid answer for settlement callers, not an error
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONResponse(c, http.StatusOK, HighestBidResponse{HighestBid: nil}, "no bids found for this auction")
			return
		}
		helpers.RespondError(c, "HighestBidHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, HighestBidResponse{HighestBid: &bid}, "highest bid retrieved successfully")
}

// BidsByAuctionHandler handles GET /bids/auction/:auction_id
func (h *BidHandler) BidsByAuctionHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseIDParam(c, "auction_id")
	if !ok {
		return
	}

	bids, err := h.service.BidsForAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "BidsByAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	if bids == nil {
		bids = []models.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, BidListResponse{Bids: bids}, "auction bids retrieved successfully")
	helpers.LogSuccess("BidsByAuctionHandler", "auction bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// BidsByUserHandler handles GET /bids/user/:user_id
func (h *BidHandler) BidsByUserHandler(c *gin.Context) {
	userID, ok := helpers.ParseIDParam(c, "user_id")
	if !ok {
		return
	}

	bids, err := h.service.BidsForUser(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "BidsByUserHandler", err, map[string]any{"user_id": userID})
		return
	}
	if bids == nil {
		bids = []models.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, BidListResponse{Bids: bids}, "user bids retrieved successfully")
}
