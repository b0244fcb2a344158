package server

import (
	"auction-platform/internal/auth"
	gatewayhandler "auction-platform/services/gateway/handler"

	"github.com/gin-gonic/gin"
)

// SetupGatewayRouter configures the gateway. The route table is the
// fixed public/protected classification: auction and bid reads are
// public, every mutation requires a verified principal, and the token
// is checked before any request is forwarded downstream.
func SetupGatewayRouter(h *gatewayhandler.GatewayHandler, verifier auth.TokenVerifier) *gin.Engine {
	router := newRouter()
	authRequired := auth.RequireAuth(verifier)

	// user service
	router.POST("/register", h.ForwardToUser)
	router.POST("/login", h.ForwardToUser)
	router.GET("/users/:user_id", h.ForwardToUser)

	// auction service
	router.GET("/auctions", h.ForwardToAuction)
	router.GET("/auctions/manage/sweep", h.ForwardToAuction)
	router.GET("/auctions/:auction_id", h.ForwardToAuction)
	router.GET("/auctions/:auction_id/winner", h.ForwardToAuction)
	router.POST("/auctions", authRequired, h.ForwardToAuction)
	router.DELETE("/auctions/:auction_id", authRequired, h.ForwardToAuction)
	router.PATCH("/auctions/:auction_id/status", authRequired, h.ForwardToAuction)
	router.POST("/auctions/:auction_id/settle", authRequired, h.ForwardToAuction)

	// bid service
	router.POST("/bids", authRequired, h.ForwardToBid)
	router.GET("/bids/highest/:auction_id", h.ForwardToBid)
	router.GET("/bids/auction/:auction_id", h.ForwardToBid)
	router.GET("/bids/user/:user_id", h.ForwardToBid)

	router.GET("/health", healthHandler("gateway"))
	router.GET("/health/services", h.ServicesHealthHandler)

	return router
}
