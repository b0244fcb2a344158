package auctionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"
)

// MySQLStore is the database-backed AuctionDB. Single-row conditional
// updates give the per-auction ordering guarantee.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore wraps an open database handle.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// InitSchema creates the auctions table when it does not exist yet.
func (s *MySQLStore) InitSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS auctions (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			starting_price DOUBLE NOT NULL,
			current_price DOUBLE NOT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'pending',
			ends_at DATETIME NOT NULL,
			owner_id BIGINT NOT NULL,
			winner_id BIGINT NULL,
			winning_amount DOUBLE NULL,
			created_at DATETIME NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("init auctions schema: %w", err)
	}
	return nil
}

const auctionColumns = `id, title, description, starting_price, current_price, status, ends_at, owner_id, winner_id, winning_amount, created_at`

func scanAuction(row interface{ Scan(...any) error }) (models.Auction, error) {
	var a models.Auction
	var status string
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.StartingPrice, &a.CurrentPrice,
		&status, &a.EndsAt, &a.OwnerID, &a.WinnerID, &a.WinningAmount, &a.CreatedAt)
	if err != nil {
		return models.Auction{}, err
	}
	a.Status = models.AuctionStatus(status)
	return a, nil
}

func (s *MySQLStore) CreateAuction(ctx context.Context, a models.Auction) (models.Auction, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO auctions (title, description, starting_price, current_price, status, ends_at, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Title, a.Description, a.StartingPrice, a.CurrentPrice, string(a.Status),
		a.EndsAt, a.OwnerID, a.CreatedAt,
	)
	if err != nil {
		return models.Auction{}, fmt.Errorf("insert auction: %w", err)
	}
	a.ID, err = res.LastInsertId()
	if err != nil {
		return models.Auction{}, fmt.Errorf("insert auction id: %w", err)
	}
	return a, nil
}

func (s *MySQLStore) GetAuction(ctx context.Context, id int64) (models.Auction, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+auctionColumns+` FROM auctions WHERE id = ?`, id)
	a, err := scanAuction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Auction{}, fmt.Errorf("get auction %d: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return models.Auction{}, fmt.Errorf("get auction %d: %w", id, err)
	}
	return a, nil
}

func (s *MySQLStore) ListAuctions(ctx context.Context, status models.AuctionStatus) ([]models.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	defer rows.Close()

	var out []models.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("list auctions: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *MySQLStore) DeleteAuction(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM auctions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete auction %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete auction %d: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return nil
}

func (s *MySQLStore) UpdateCurrentPrice(ctx context.Context, id int64, price float64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE auctions SET current_price = ? WHERE id = ?`, price, id)
	if err != nil {
		return fmt.Errorf("update price for auction %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 when the stored price already equals the
		// new one, so re-check existence before reporting not found.
		if _, getErr := s.GetAuction(ctx, id); getErr != nil {
			return getErr
		}
	}
	return nil
}

func (s *MySQLStore) ActivateAuction(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE auctions SET status = ? WHERE id = ? AND status = ?`,
		string(models.StatusLive), id, string(models.StatusPending))
	if err != nil {
		return false, fmt.Errorf("activate auction %d: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		if _, getErr := s.GetAuction(ctx, id); getErr != nil {
			return false, getErr
		}
		return false, nil
	}
	return true, nil
}

func (s *MySQLStore) CloseAuction(ctx context.Context, id int64, winnerID *int64, winningAmount *float64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE auctions SET status = ?, winner_id = ?, winning_amount = ? WHERE id = ? AND status = ?`,
		string(models.StatusEnded), winnerID, winningAmount, id, string(models.StatusLive))
	if err != nil {
		return false, fmt.Errorf("close auction %d: %w", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		if _, getErr := s.GetAuction(ctx, id); getErr != nil {
			return false, getErr
		}
		return false, nil
	}
	return true, nil
}

func (s *MySQLStore) ListExpiredLive(ctx context.Context, now time.Time) ([]models.Auction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+auctionColumns+` FROM auctions WHERE status = ? AND ends_at <= ? ORDER BY id`,
		string(models.StatusLive), now)
	if err != nil {
		return nil, fmt.Errorf("list expired auctions: %w", err)
	}
	defer rows.Close()

	var out []models.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("list expired auctions: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
