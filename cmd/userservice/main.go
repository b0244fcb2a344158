package main

import (
	"context"
	"database/sql"
	"time"

	"auction-platform/internal/auth"
	"auction-platform/internal/config"
	"auction-platform/internal/server"
	"auction-platform/internal/userservice"
	"auction-platform/internal/userstore"
	"auction-platform/utils"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}

	repo, err := buildStore(cfg.UserDSN)
	if err != nil {
		utils.Fatal("failed to init user store", map[string]any{"error": err.Error()})
	}

	signer := auth.NewSigner(cfg.JWTSecret, "user-service", cfg.TokenTTL)
	service := userservice.NewUserService(repo, signer)
	router := server.SetupUserRouter(service)

	utils.Info("starting user service", map[string]any{"addr": cfg.UserAddr})
	if err := router.Run(cfg.UserAddr); err != nil {
		utils.Fatal("user service failed", map[string]any{"error": err.Error()})
	}
}

// buildStore opens the MySQL-backed store, or falls back to the
// in-memory store when no DSN is configured (development mode).
func buildStore(dsn string) (userstore.UserDB, error) {
	if dsn == "" {
		utils.Warn("USER_DB_DSN not set, using in-memory store", nil)
		return userstore.NewMemoryStore(), nil
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)

	store := userstore.NewMySQLStore(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.InitSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
