package bidstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"
)

// MySQLStore is the database-backed BidDB.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore wraps an open database handle.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// InitSchema creates the bids table when it does not exist yet.
func (s *MySQLStore) InitSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS bids (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			auction_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			amount DOUBLE NOT NULL,
			timestamp DATETIME(6) NOT NULL,
			INDEX idx_bids_auction (auction_id),
			INDEX idx_bids_user (user_id)
		)`)
	if err != nil {
		return fmt.Errorf("init bids schema: %w", err)
	}
	return nil
}

func (s *MySQLStore) RecordBid(ctx context.Context, b models.Bid) (models.Bid, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO bids (auction_id, user_id, amount, timestamp) VALUES (?, ?, ?, ?)`,
		b.AuctionID, b.UserID, b.Amount, b.Timestamp)
	if err != nil {
		return models.Bid{}, fmt.Errorf("insert bid: %w", err)
	}
	b.ID, err = res.LastInsertId()
	if err != nil {
		return models.Bid{}, fmt.Errorf("insert bid id: %w", err)
	}
	return b, nil
}

func (s *MySQLStore) BidsForAuction(ctx context.Context, auctionID int64) ([]models.Bid, error) {
	return s.queryBids(ctx,
		`SELECT id, auction_id, user_id, amount, timestamp FROM bids
		 WHERE auction_id = ? ORDER BY amount DESC, timestamp DESC`, auctionID)
}

func (s *MySQLStore) BidsForUser(ctx context.Context, userID int64) ([]models.Bid, error) {
	return s.queryBids(ctx,
		`SELECT id, auction_id, user_id, amount, timestamp FROM bids
		 WHERE user_id = ? ORDER BY timestamp DESC`, userID)
}

func (s *MySQLStore) HighestBid(ctx context.Context, auctionID int64) (models.Bid, error) {
	var b models.Bid
	// Earliest timestamp wins a tie: first bid at that price.
	err := s.db.QueryRowContext(ctx,
		`SELECT id, auction_id, user_id, amount, timestamp FROM bids
		 WHERE auction_id = ? ORDER BY amount DESC, timestamp ASC LIMIT 1`, auctionID).
		Scan(&b.ID, &b.AuctionID, &b.UserID, &b.Amount, &b.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bid{}, fmt.Errorf("highest bid for auction %d: %w", auctionID, auctionerrors.ErrNoBids)
	}
	if err != nil {
		return models.Bid{}, fmt.Errorf("highest bid for auction %d: %w", auctionID, err)
	}
	return b, nil
}

func (s *MySQLStore) queryBids(ctx context.Context, query string, arg int64) ([]models.Bid, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query bids: %w", err)
	}
	defer rows.Close()

	var out []models.Bid
	for rows.Next() {
		var b models.Bid
		if err := rows.Scan(&b.ID, &b.AuctionID, &b.UserID, &b.Amount, &b.Timestamp); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
