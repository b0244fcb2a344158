package models

import "time"

// AuctionStatus is the lifecycle state of an auction.
// Auctions move pending -> live -> ended, forward only.
type AuctionStatus string

const (
	StatusPending AuctionStatus = "pending"
	StatusLive    AuctionStatus = "live"
	StatusEnded   AuctionStatus = "ended"
)

// Valid reports whether s is one of the known lifecycle states.
func (s AuctionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusLive, StatusEnded:
		return true
	}
	return false
}

// User represents a registered participant.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Auction represents an auction listing. CurrentPrice is a cached
// projection of the highest accepted bid; the bid log is authoritative.
type Auction struct {
	ID            int64         `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	StartingPrice float64       `json:"starting_price"`
	CurrentPrice  float64       `json:"current_price"`
	Status        AuctionStatus `json:"status"`
	EndsAt        time.Time     `json:"ends_at"`
	OwnerID       int64         `json:"owner_id"`
	WinnerID      *int64        `json:"winner_id,omitempty"`
	WinningAmount *float64      `json:"winning_amount,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Bid represents a user's bid on an auction. Bids are append-only;
// once recorded they are never mutated or deleted.
type Bid struct {
	ID        int64     `json:"id"`
	AuctionID int64     `json:"auction_id"`
	UserID    int64     `json:"user_id"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}
