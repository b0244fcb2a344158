package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"auction-platform/internal/auctionservice"
	"auction-platform/internal/auctionstore"
	"auction-platform/internal/auth"
	"auction-platform/internal/bidservice"
	"auction-platform/internal/bidstore"
	"auction-platform/internal/clients"
	"auction-platform/internal/config"
	"auction-platform/internal/server"
	"auction-platform/internal/userservice"
	"auction-platform/internal/userstore"
	gatewayhandler "auction-platform/services/gateway/handler"
	userhandler "auction-platform/services/user/handler"
)

// Platform runs the three backend services on in-memory stores behind
// httptest servers and fronts them with the gateway router, mirroring
// the deployed topology: requests enter through the gateway and the
// auction and bid services reach each other over HTTP.
type Platform struct {
	Gateway  *gin.Engine
	Auctions *auctionstore.MemoryStore
	Bids     *bidstore.MemoryStore
}

// SetupPlatform wires the full stack for one test. The auction and bid
// services call each other, so the bid backend is registered behind a
// placeholder handler and filled in once both routers exist.
func SetupPlatform(t *testing.T) *Platform {
	t.Helper()
	gin.SetMode(gin.TestMode)

	signer := auth.NewSigner("integration-secret", "user-service", time.Hour)
	timeout := 2 * time.Second

	userRouter := server.SetupUserRouter(userservice.NewUserService(userstore.NewMemoryStore(), signer))
	userSrv := httptest.NewServer(userRouter)
	t.Cleanup(userSrv.Close)

	var bidRouter http.Handler
	bidSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bidRouter.ServeHTTP(w, r)
	}))
	t.Cleanup(bidSrv.Close)

	auctionRepo := auctionstore.NewMemoryStore()
	auctionService := auctionservice.NewAuctionService(
		auctionRepo,
		clients.NewBidClient(bidSrv.URL, timeout),
		auctionservice.NewLogNotifier(),
		timeout,
	)
	auctionSrv := httptest.NewServer(server.SetupAuctionRouter(auctionService, signer))
	t.Cleanup(auctionSrv.Close)

	bidRepo := bidstore.NewMemoryStore()
	bidRouter = server.SetupBidRouter(
		bidservice.NewBidService(bidRepo, clients.NewAuctionClient(auctionSrv.URL, timeout), timeout),
		signer,
	)

	gateway := server.SetupGatewayRouter(gatewayhandler.NewGatewayHandler(config.ServiceMap{
		User:    userSrv.URL,
		Auction: auctionSrv.URL,
		Bid:     bidSrv.URL,
	}, timeout), signer)

	return &Platform{Gateway: gateway, Auctions: auctionRepo, Bids: bidRepo}
}

// ExecuteRequest executes an HTTP request against the gateway with an
// optional bearer token and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes a request and parses the response
// envelope, unwrapping the data payload when one is present.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, url, token, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if data, ok := resp["data"].(map[string]any); ok {
			return data, w
		}
	}
	return resp, w
}

// RegisterUser registers a user through the gateway and returns the
// assigned ID and a token usable for authenticated calls.
func RegisterUser(t *testing.T, p *Platform, name, email string) (int64, string) {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, p.Gateway, http.MethodPost, "/register", "", userhandler.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, "register %s: %v", email, resp)

	user := resp["user"].(map[string]any)
	return int64(user["id"].(float64)), resp["token"].(string)
}

// CreateLiveAuction creates an auction as owner and activates it.
func CreateLiveAuction(t *testing.T, p *Platform, ownerToken string, startingPrice float64, endsAt time.Time) int64 {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, p.Gateway, http.MethodPost, "/auctions", ownerToken, map[string]any{
		"title":          "Integration lot",
		"description":    "wired end to end",
		"starting_price": startingPrice,
		"ends_at":        endsAt,
	})
	require.Equal(t, http.StatusCreated, w.Code, "create auction: %v", resp)
	auctionID := int64(resp["auction_id"].(float64))

	_, w = ExecuteRequestAndParse(t, p.Gateway, http.MethodPatch,
		fmt.Sprintf("/auctions/%d/status", auctionID), ownerToken,
		map[string]any{"status": "live"})
	require.Equal(t, http.StatusOK, w.Code)

	return auctionID
}
