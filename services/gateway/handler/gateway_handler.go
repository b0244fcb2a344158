package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/config"
	"auction-platform/services/helpers"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

// GatewayHandler forwards authenticated traffic to the backend services.
// It holds no business state: the service map is injected at startup and
// the only logic here is the auth gate (applied in the router) plus
// verbatim request forwarding.
type GatewayHandler struct {
	services config.ServiceMap
	client   *http.Client
}

func NewGatewayHandler(services config.ServiceMap, timeout time.Duration) *GatewayHandler {
	return &GatewayHandler{
		services: services,
		client:   &http.Client{Timeout: timeout},
	}
}

// ForwardToUser proxies the request to the user service.
func (h *GatewayHandler) ForwardToUser(c *gin.Context) { h.forward(c, h.services.User) }

// ForwardToAuction proxies the request to the auction service.
func (h *GatewayHandler) ForwardToAuction(c *gin.Context) { h.forward(c, h.services.Auction) }

// ForwardToBid proxies the request to the bid service.
func (h *GatewayHandler) ForwardToBid(c *gin.Context) { h.forward(c, h.services.Bid) }

// forward relays method, path, query string, body and the relevant
// headers to the backend and echoes the backend's status and body
// unchanged. A transport failure surfaces as 503, which keeps it
// distinguishable from business errors the backend reported itself.
func (h *GatewayHandler) forward(c *gin.Context, baseURL string) {
	target := baseURL + c.Request.URL.Path
	if q := c.Request.URL.RawQuery; q != "" {
		target += "?" + q
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, fmt.Errorf("gateway: build request: %w", err), "internal server error")
		return
	}
	for _, header := range []string{"Authorization", "Content-Type", "Accept"} {
		if v := c.GetHeader(header); v != "" {
			req.Header.Set(header, v)
		}
	}

	resp, err := h.client.Do(req)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable,
			fmt.Errorf("gateway: %w: %w", auctionerrors.ErrUnavailable, err), "service unavailable")
		utils.Warn("gateway: downstream unreachable", map[string]any{
			"target": target,
			"error":  err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable,
			fmt.Errorf("gateway: %w: %w", auctionerrors.ErrUnavailable, err), "service unavailable")
		return
	}

	c.Data(resp.StatusCode, resp.Header.Get("Content-Type"), body)
}

// ServiceHealth is one backend's probe result.
type ServiceHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ServicesHealthResponse aggregates backend probe results.
type ServicesHealthResponse struct {
	Gateway  string                   `json:"gateway"`
	Services map[string]ServiceHealth `json:"services"`
}

// ServicesHealthHandler handles GET /health/services, probing each
// backend's health endpoint.
func (h *GatewayHandler) ServicesHealthHandler(c *gin.Context) {
	targets := map[string]string{
		"user":    h.services.User,
		"auction": h.services.Auction,
		"bid":     h.services.Bid,
	}

	resp := ServicesHealthResponse{Gateway: "healthy", Services: make(map[string]ServiceHealth, len(targets))}
	for name, baseURL := range targets {
		resp.Services[name] = h.probe(c.Request.Context(), baseURL)
	}

	utils.JSONResponse(c, http.StatusOK, resp, "service health retrieved")
	helpers.LogSuccess("ServicesHealthHandler", "service health retrieved", nil)
}

func (h *GatewayHandler) probe(ctx context.Context, baseURL string) ServiceHealth {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
	if err != nil {
		return ServiceHealth{Status: "unhealthy", Error: err.Error()}
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return ServiceHealth{Status: "unhealthy", Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ServiceHealth{Status: "unhealthy", Error: fmt.Sprintf("status %d", resp.StatusCode)}
	}
	return ServiceHealth{Status: "healthy"}
}
