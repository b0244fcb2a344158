package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"

	"github.com/stretchr/testify/require"
)

// Test HighestBid and the "no bids" versus "cannot ask" distinction
func TestBidClient_HighestBid(t *testing.T) {
	t.Parallel()

	ts := time.Now().UTC().Truncate(time.Second)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)

		switch r.URL.Path {
		case "/bids/highest/1":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"message": "highest bid retrieved successfully",
				"data": map[string]any{
					"highest_bid": models.Bid{ID: 5, AuctionID: 1, UserID: 22, Amount: 150, Timestamp: ts},
				},
			})
		case "/bids/highest/2":
			// the bid service answers "no bids" with a null payload, not an error
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"message": "no bids found for this auction",
				"data":    map[string]any{"highest_bid": nil},
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewBidClient(server.URL, time.Second)

	t.Run("auction_with_bids", func(t *testing.T) {
		bid, err := client.HighestBid(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, bid)
		require.Equal(t, int64(22), bid.UserID)
		require.Equal(t, 150.0, bid.Amount)
	})

	t.Run("auction_without_bids", func(t *testing.T) {
		bid, err := client.HighestBid(context.Background(), 2)
		require.NoError(t, err)
		require.Nil(t, bid)
	})

	t.Run("remote_failure_is_unavailable", func(t *testing.T) {
		_, err := client.HighestBid(context.Background(), 3)
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrUnavailable), "got: %v", err)
	})
}

// A dead bid service must never read as "no bidders"
func TestBidClient_Unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewBidClient(server.URL, time.Second)

	bid, err := client.HighestBid(context.Background(), 1)
	require.Error(t, err)
	require.Nil(t, bid)
	require.True(t, errors.Is(err, auctionerrors.ErrUnavailable), "got: %v", err)
}
