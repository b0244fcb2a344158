package main

import (
	"context"
	"database/sql"
	"time"

	"auction-platform/internal/auctionservice"
	"auction-platform/internal/auctionstore"
	"auction-platform/internal/auth"
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

	repo, err := buildStore(cfg.AuctionDSN)
	if err != nil {
		utils.Fatal("failed to init auction store", map[string]any{"error": err.Error()})
	}

	bidClient := clients.NewBidClient(cfg.Services.Bid, cfg.CallTimeout)
	service := auctionservice.NewAuctionService(repo, bidClient, auctionservice.NewLogNotifier(), cfg.CallTimeout)

	go runSweeper(service, cfg.SweepInterval)

	verifier := auth.NewSigner(cfg.JWTSecret, "user-service", cfg.TokenTTL)
	router := server.SetupAuctionRouter(service, verifier)

	utils.Info("starting auction service", map[string]any{"addr": cfg.AuctionAddr})
	if err := router.Run(cfg.AuctionAddr); err != nil {
		utils.Fatal("auction service failed", map[string]any{"error": err.Error()})
	}
}

// runSweeper drives the lifecycle sweep on a fixed tick. Overlap with
// manual settles is safe; the sweep converges on already-settled
// auctions without re-notifying.
func runSweeper(service *auctionservice.AuctionService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		result, err := service.Sweep(context.Background())
		if err != nil {
			utils.Error("sweep tick failed", map[string]any{"error": err.Error()})
			continue
		}
		if result.Activated > 0 || result.Closed > 0 {
			utils.Info("sweep tick", map[string]any{
				"activated": result.Activated,
				"closed":    result.Closed,
				"notified":  result.Notified,
			})
		}
	}
}

// buildStore opens the MySQL-backed store, or falls back to the
// in-memory store when no DSN is configured (development mode).
func buildStore(dsn string) (auctionstore.AuctionDB, error) {
	if dsn == "" {
		utils.Warn("AUCTION_DB_DSN not set, using in-memory store", nil)
		return auctionstore.NewMemoryStore(), nil
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)

	store := auctionstore.NewMySQLStore(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.InitSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
