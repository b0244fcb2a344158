// Package clients holds the HTTP clients the services use to call each
// other. Every call carries a context deadline; transport failures are
// reported as auctionerrors.ErrUnavailable so callers can tell an
// unreachable peer apart from a business error the peer returned.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"
)

// envelope is the response body shared by all services.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AuctionClient calls the auction service.
type AuctionClient struct {
	baseURL string
	client  *http.Client
}

// NewAuctionClient creates a client for the auction service at baseURL.
func NewAuctionClient(baseURL string, timeout time.Duration) *AuctionClient {
	return &AuctionClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetAuction fetches a single auction.
func (c *AuctionClient) GetAuction(ctx context.Context, auctionID int64) (models.Auction, error) {
	url := fmt.Sprintf("%s/auctions/%d", c.baseURL, auctionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Auction{}, fmt.Errorf("build auction request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.Auction{}, fmt.Errorf("auction service: %w: %w", auctionerrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Auction{}, fmt.Errorf("auction %d: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return models.Auction{}, fmt.Errorf("auction service returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return models.Auction{}, fmt.Errorf("decode auction response: %w", err)
	}
	var payload struct {
		Auction models.Auction `json:"auction"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return models.Auction{}, fmt.Errorf("decode auction payload: %w", err)
	}
	return payload.Auction, nil
}

// UpdatePrice pushes a new cached current price to the auction service.
// This is the price-synchronization callback issued after a bid is
// accepted; the bid log stays authoritative if the call fails.
func (c *AuctionClient) UpdatePrice(ctx context.Context, auctionID int64, newPrice float64) error {
	body, err := json.Marshal(map[string]float64{"new_price": newPrice})
	if err != nil {
		return fmt.Errorf("encode price update: %w", err)
	}

	url := fmt.Sprintf("%s/auctions/%d/price", c.baseURL, auctionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build price update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("auction service: %w: %w", auctionerrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("price update returned status %d", resp.StatusCode)
	}
	return nil
}
