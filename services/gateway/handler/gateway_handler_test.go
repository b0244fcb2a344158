package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"auction-platform/internal/auth"
	"auction-platform/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Test verbatim forwarding of method, path, query, body and headers
func TestGatewayHandler_Forward(t *testing.T) {
	var gotMethod, gotPath, gotQuery, gotAuth, gotContentType string
	var gotBody []byte

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"success":false,"message":"backend says no"}`))
	}))
	defer backend.Close()

	handler := NewGatewayHandler(config.ServiceMap{Auction: backend.URL}, time.Second)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions", handler.ForwardToAuction)

	req := httptest.NewRequest(http.MethodPost, "/auctions?status=live", bytes.NewReader([]byte(`{"title":"clock"}`)))
	req.Header.Set("Authorization", "Bearer some.token.value")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/auctions", gotPath)
	require.Equal(t, "status=live", gotQuery)
	require.Equal(t, "Bearer some.token.value", gotAuth)
	require.Equal(t, "application/json", gotContentType)
	require.JSONEq(t, `{"title":"clock"}`, string(gotBody))

	// the backend's reply is relayed unchanged, status included
	require.Equal(t, http.StatusTeapot, w.Code)
	require.JSONEq(t, `{"success":false,"message":"backend says no"}`, w.Body.String())
}

// An unreachable backend must answer 503, not hang or 500
func TestGatewayHandler_BackendDown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	handler := NewGatewayHandler(config.ServiceMap{Bid: backend.URL}, time.Second)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/bids/highest/:auction_id", handler.ForwardToBid)

	req := httptest.NewRequest(http.MethodGet, "/bids/highest/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, false, resp["success"])
	require.Contains(t, resp["message"], "service unavailable")
}

// The auth gate must reject before anything reaches the backend
func TestGatewayHandler_AuthGateBlocksBeforeForwarding(t *testing.T) {
	var backendCalls int64

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&backendCalls, 1)
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer backend.Close()

	signer := auth.NewSigner("test-secret", "user-service", time.Hour)
	handler := NewGatewayHandler(config.ServiceMap{Bid: backend.URL}, time.Second)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids", auth.RequireAuth(signer), handler.ForwardToBid)

	t.Run("missing_token_never_reaches_backend", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/bids", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, int64(0), atomic.LoadInt64(&backendCalls))
	})

	t.Run("valid_token_is_forwarded", func(t *testing.T) {
		token, err := signer.Issue(20, "bob@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/bids", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, int64(1), atomic.LoadInt64(&backendCalls))
	})
}

// Test the aggregated backend health probe
func TestGatewayHandler_ServicesHealth(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer healthy.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	handler := NewGatewayHandler(config.ServiceMap{
		User:    healthy.URL,
		Auction: healthy.URL,
		Bid:     dead.URL,
	}, time.Second)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health/services", handler.ServicesHealthHandler)

	req := httptest.NewRequest(http.MethodGet, "/health/services", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	require.Equal(t, "healthy", data["gateway"])

	services := data["services"].(map[string]any)
	require.Equal(t, "healthy", services["user"].(map[string]any)["status"])
	require.Equal(t, "healthy", services["auction"].(map[string]any)["status"])
	require.Equal(t, "unhealthy", services["bid"].(map[string]any)["status"])
}
