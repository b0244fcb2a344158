package clients

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"

	"github.com/stretchr/testify/require"
)

// Test GetAuction against a stubbed auction service
func TestAuctionClient_GetAuction(t *testing.T) {
	t.Parallel()

	endsAt := time.Now().Add(1 * time.Hour).UTC().Truncate(time.Second)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)

		switch r.URL.Path {
		case "/auctions/1":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"message": "auction found",
				"data": map[string]any{
					"auction": models.Auction{
						ID:           1,
						Title:        "vintage clock",
						CurrentPrice: 150,
						Status:       models.StatusLive,
						EndsAt:       endsAt,
						OwnerID:      10,
					},
				},
			})
		case "/auctions/404":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "auction not found"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := NewAuctionClient(server.URL, time.Second)

	t.Run("existing_auction", func(t *testing.T) {
		auction, err := client.GetAuction(context.Background(), 1)
		require.NoError(t, err)
		require.Equal(t, int64(1), auction.ID)
		require.Equal(t, "vintage clock", auction.Title)
		require.Equal(t, 150.0, auction.CurrentPrice)
		require.Equal(t, models.StatusLive, auction.Status)
		require.Equal(t, int64(10), auction.OwnerID)
	})

	t.Run("remote_not_found_maps_to_domain_error", func(t *testing.T) {
		_, err := client.GetAuction(context.Background(), 404)
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrAuctionNotFound), "got: %v", err)
	})

	t.Run("remote_server_error", func(t *testing.T) {
		_, err := client.GetAuction(context.Background(), 500)
		require.Error(t, err)
		require.False(t, errors.Is(err, auctionerrors.ErrAuctionNotFound))
	})
}

// A dead peer must surface as ErrUnavailable, not as a business answer
func TestAuctionClient_Unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewAuctionClient(server.URL, time.Second)

	_, err := client.GetAuction(context.Background(), 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrUnavailable), "got: %v", err)

	err = client.UpdatePrice(context.Background(), 1, 150)
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrUnavailable), "got: %v", err)
}

// Test the price-sync callback wire format
func TestAuctionClient_UpdatePrice(t *testing.T) {
	t.Parallel()

	var gotPath, gotMethod string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "auction price updated"})
	}))
	defer server.Close()

	client := NewAuctionClient(server.URL, time.Second)

	err := client.UpdatePrice(context.Background(), 7, 150)
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, gotMethod)
	require.Equal(t, "/auctions/7/price", gotPath)

	var payload map[string]float64
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	require.Equal(t, 150.0, payload["new_price"])
}

// Non-200 replies to the price callback are reported to the caller
func TestAuctionClient_UpdatePriceRejected(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewAuctionClient(server.URL, time.Second)

	err := client.UpdatePrice(context.Background(), 7, 150)
	require.Error(t, err)
}
