package main

import (
	"context"
	"database/sql"
	"time"

	"auction-platform/internal/auth"
	"auction-platform/internal/bidservice"
	"auction-platform/internal/bidstore"
	"auction-platform/internal/clients"
	"auction-platform/internal/config"
	"auction-platform/internal/server"
	"auction-platform/utils"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}

	repo, err := buildStore(cfg.BidDSN)
	if err != nil {
		utils.Fatal("failed to init bid store", map[string]any{"error": err.Error()})
	}

	auctionClient := clients.NewAuctionClient(cfg.Services.Auction, cfg.CallTimeout)
	service := bidservice.NewBidService(repo, auctionClient, cfg.CallTimeout)

	verifier := auth.NewSigner(cfg.JWTSecret, "user-service", cfg.TokenTTL)
	router := server.SetupBidRouter(service, verifier)

	utils.Info("starting bid service", map[string]any{"addr": cfg.BidAddr})
	if err := router.Run(cfg.BidAddr); err != nil {
		utils.Fatal("bid service failed", map[string]any{"error": err.Error()})
	}
}

// buildStore opens the MySQL-backed store, or falls back to the
// in-memory store when no DSN is configured (development mode).
func buildStore(dsn string) (bidstore.BidDB, error) {
	if dsn == "" {
		utils.Warn("BID_DB_DSN not set, using in-memory store", nil)
		return bidstore.NewMemoryStore(), nil
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)

	store := bidstore.NewMySQLStore(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.InitSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
