package auctionservice

import (
	"context"

	"auction-platform/internal/models"
	"auction-platform/utils"
)

// LogNotifier announces winners on the service log. Stands in for a real
// delivery channel (email, push) while keeping the notification seam in
// place.
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyWinner(_ context.Context, auction models.Auction, winnerID int64, amount float64) error {
	utils.Info("auction won", map[string]any{
		"auction_id":     auction.ID,
		"auction_title":  auction.Title,
		"winner_id":      winnerID,
		"winning_amount": amount,
	})
	return nil
}
