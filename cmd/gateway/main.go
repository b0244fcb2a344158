package main

import (
	"auction-platform/internal/auth"
	"auction-platform/internal/config"
	"auction-platform/internal/server"
	gatewayhandler "auction-platform/services/gateway/handler"
	"auction-platform/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}

	verifier := auth.NewSigner(cfg.JWTSecret, "user-service", cfg.TokenTTL)
	handler := gatewayhandler.NewGatewayHandler(cfg.Services, cfg.CallTimeout)
	router := server.SetupGatewayRouter(handler, verifier)

	utils.Info("starting gateway", map[string]any{
		"addr":    cfg.GatewayAddr,
		"user":    cfg.Services.User,
		"auction": cfg.Services.Auction,
		"bid":     cfg.Services.Bid,
	})
	if err := router.Run(cfg.GatewayAddr); err != nil {
		utils.Fatal("gateway failed", map[string]any{"error": err.Error()})
	}
}
