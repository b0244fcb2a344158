package handler

import (
	"context"
	"net/http"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/auctionservice"
	"auction-platform/internal/auth"
	"auction-platform/internal/models"
	"auction-platform/services/helpers"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(ctx context.Context, ownerID int64, title, description string, startingPrice float64, endsAt time.Time) (models.Auction, error)
	GetAuction(ctx context.Context, id int64) (models.Auction, error)
	ListAuctions(ctx context.Context, status models.AuctionStatus) ([]models.Auction, error)
	DeleteAuction(ctx context.Context, id, requesterID int64) error
	UpdateCurrentPrice(ctx context.Context, id int64, newPrice float64) error
	ChangeStatus(ctx context.Context, id int64, status models.AuctionStatus) error
	Settle(ctx context.Context, id int64) (auctionservice.SettleResult, error)
	Sweep(ctx context.Context) (auctionservice.SweepResult, error)
	GetWinner(ctx context.Context, id int64) (auctionservice.WinnerLookup, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	var req CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	ownerID, ok := auth.PrincipalID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "missing or invalid token")
		return
	}

	auction, err := h.service.CreateAuction(c.Request.Context(), ownerID, req.Title, req.Description, req.StartingPrice, req.EndsAt)
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"owner_id": ownerID})
		return
	}

	resp := CreateAuctionResponse{
		AuctionID:     auction.ID,
		Title:         auction.Title,
		StartingPrice: auction.StartingPrice,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id": auction.ID,
		"owner_id":   ownerID,
	})
}

// ListAuctionsHandler handles GET /auctions with an optional ?status= filter
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	status := models.AuctionStatus(c.Query("status"))

	auctions, err := h.service.ListAuctions(c.Request.Context(), status)
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, map[string]any{"status": string(status)})
		return
	}
	if auctions == nil {
		auctions = []models.Auction{}
	}

	utils.JSONResponse(c, http.StatusOK, AuctionListResponse{Auctions: auctions}, "auctions retrieved successfully")
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseIDParam(c, "auction_id")
	if !ok {
		return
	}

	auction, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, AuctionResponse{Auction: auction}, "auction found")
}

// DeleteAuctionHandler handles DELETE /auctions/:auction_id
func (h *AuctionHandler) DeleteAuctionHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseIDParam(c, "auction_id")
	if !ok {
		return
	}

	requesterID, ok := auth.PrincipalID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "missing or invalid token")
		return
	}

	if err := h.service.DeleteAuction(c.Request.Context(), auctionID, requesterID); err != nil {
		helpers.RespondError(c, "DeleteAuctionHandler", err, map[string]any{
			"auction_id":   auctionID,
			"requester_id": requesterID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"auction_id": auctionID}, "auction deleted successfully")
	helpers.LogSuccess("DeleteAuctionHandler", "auction deleted successfully", map[string]any{
		"auction_id": auctionID,
	})
}

// UpdatePriceHandler handles PATCH /auctions/:auction_id/price, the
// trusted internal price-sync callback from the bid service.
func (h *AuctionHandler) UpdatePriceHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseIDParam(c, "auction_id")
	if !ok {
		return
	}

	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdatePriceHandler", err)
		return
	}

	if err := h.service.UpdateCurrentPrice(c.Request.Context(), auctionID, req.NewPrice); err != nil {
		helpers.RespondError(c, "UpdatePriceHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := UpdatePriceResponse{AuctionID: auctionID, NewPrice: req.NewPrice}
	utils.JSONResponse(c, http.StatusOK, resp, "auction price updated")
}

// UpdateStatusHandler handles PATCH /auctions/:auction_id/status
func (h *AuctionHandler) UpdateStatusHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseIDParam(c, "auction_id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateStatusHandler", err)
		return
	}

	if err := h.service.ChangeStatus(c.Request.Context(), auctionID, models.AuctionStatus(req.Status)); err != nil {
		helpers.RespondError(c, "UpdateStatusHandler", err, map[string]any{
			"auction_id": auctionID,
			"status":     req.Status,
		})
		return
	}

	resp := UpdateStatusResponse{AuctionID: auctionID, Status: req.Status}
	utils.JSONResponse(c, http.StatusOK, resp, "auction status updated to "+req.Status)
	helpers.LogSuccess("UpdateStatusHandler", "auction status updated", map[string]any{
		"auction_id": auctionID,
		"status":     req.Status,
	})
}

// SettleHandler handles POST /auctions/:auction_id/settle
func (h *AuctionHandler) SettleHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseIDParam(c, "auction_id")
	if !ok {
		return
	}

	result, err := h.service.Settle(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "SettleHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := SettleResponse{
		AuctionID:     auctionID,
		Status:        string(result.Status),
		WinnerID:      result.WinnerID,
		WinningAmount: result.WinningAmount,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auction settled")
	helpers.LogSuccess("SettleHandler", "auction settled", map[string]any{
		"auction_id":   auctionID,
		"transitioned": result.Transitioned,
	})
}

// SweepHandler handles GET /auctions/manage/sweep
func (h *AuctionHandler) SweepHandler(c *gin.Context) {
	result, err := h.service.Sweep(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "SweepHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "auction statuses updated")
	helpers.LogSuccess("SweepHandler", "sweep completed", map[string]any{
		"activated": result.Activated,
		"closed":    result.Closed,
		"notified":  result.Notified,
	})
}

// GetWinnerHandler handles GET /auctions/:auction_id/winner
func (h *AuctionHandler) GetWinnerHandler(c *gin.Context) {
	auctionID, ok := helpers.ParseIDParam(c, "auction_id")
	if !ok {
		return
	}

	lookup, err := h.service.GetWinner(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetWinnerHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	resp := WinnerResponse{Winner: lookup.Winner, Status: string(lookup.Status)}
	utils.JSONResponse(c, http.StatusOK, resp, "winner lookup completed")
}
