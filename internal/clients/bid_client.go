package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"
)

// BidClient calls the bid service.
type BidClient struct {
	baseURL string
	client  *http.Client
}

// NewBidClient creates a client for the bid service at baseURL.
func NewBidClient(baseURL string, timeout time.Duration) *BidClient {
	return &BidClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// HighestBid returns the winning bid for an auction, or nil when the bid
// service reports that no bids exist. A transport failure is returned as
// ErrUnavailable: "could not ask" must never be read as "no bidders".
func (c *BidClient) HighestBid(ctx context.Context, auctionID int64) (*models.Bid, error) {
	url := fmt.Sprintf("%s/bids/highest/%d", c.baseURL, auctionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build highest bid request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bid service: %w: %w", auctionerrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bid service: %w: status %d", auctionerrors.ErrUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode highest bid response: %w", err)
	}
	var payload struct {
		HighestBid *models.Bid `json:"highest_bid"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("decode highest bid payload: %w", err)
	}
	return payload.HighestBid, nil
}
