// Package server wires gin routers for the four services. Each service
// gets its own router so the binaries stay independent; all share the
// recovery and request-logging middleware.
package server

import (
	"auction-platform/internal/auth"
	auctionhandler "auction-platform/services/auction/handler"
	bidhandler "auction-platform/services/bid/handler"
	userhandler "auction-platform/services/user/handler"

	"github.com/gin-gonic/gin"
)

func newRouter() *gin.Engine {
	router := gin.New() // no default middleware, logging stays ours

	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware)
	return router
}

// SetupUserRouter configures the user service routes.
func SetupUserRouter(service userhandler.UserServiceInterface) *gin.Engine {
	router := newRouter()
	h := userhandler.NewUserHandler(service)

	router.POST("/register", h.RegisterHandler)
	router.POST("/login", h.LoginHandler)
	router.GET("/users/:user_id", h.GetUserHandler)
	router.GET("/health", healthHandler("user-service"))

	return router
}

// SetupAuctionRouter configures the auction service routes. The price,
// status, settle and sweep endpoints are the trusted internal channel;
// only the gateway enforces caller authentication, which is a known
// hardening gap of the deployment model.
func SetupAuctionRouter(service auctionhandler.AuctionServiceInterface, verifier auth.TokenVerifier) *gin.Engine {
	router := newRouter()
	h := auctionhandler.NewAuctionHandler(service)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", h.ListAuctionsHandler)
		// registered before /:auction_id so "manage" is not read as an id
		auctions.GET("/manage/sweep", h.SweepHandler)
		auctions.GET("/:auction_id", h.GetAuctionHandler)
		auctions.GET("/:auction_id/winner", h.GetWinnerHandler)
		auctions.PATCH("/:auction_id/price", h.UpdatePriceHandler)

		auctions.POST("", auth.RequireAuth(verifier), h.CreateAuctionHandler)
		auctions.DELETE("/:auction_id", auth.RequireAuth(verifier), h.DeleteAuctionHandler)
		auctions.PATCH("/:auction_id/status", h.UpdateStatusHandler)
		auctions.POST("/:auction_id/settle", h.SettleHandler)
	}

	router.GET("/health", healthHandler("auction-service"))

	return router
}

// SetupBidRouter configures the bid service routes.
func SetupBidRouter(service bidhandler.BidServiceInterface, verifier auth.TokenVerifier) *gin.Engine {
	router := newRouter()
	h := bidhandler.NewBidHandler(service)

	bids := router.Group("/bids")
	{
		bids.POST("", auth.RequireAuth(verifier), h.PlaceBidHandler)
		bids.GET("/highest/:auction_id", h.HighestBidHandler)
		bids.GET("/auction/:auction_id", h.BidsByAuctionHandler)
		bids.GET("/user/:user_id", h.BidsByUserHandler)
	}

	router.GET("/health", healthHandler("bid-service"))

	return router
}
