package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// ServiceMap holds the base URLs of the backend services. It is resolved
// once at startup and passed explicitly to the gateway and cross-service
// clients; nothing reads endpoints from process-wide state after Load.
type ServiceMap struct {
	User    string
	Auction string
	Bid     string
}

// Config carries everything the four binaries need. Each main reads only
// its own fields.
type Config struct {
	GatewayAddr string
	UserAddr    string
	AuctionAddr string
	BidAddr     string

	Services ServiceMap

	JWTSecret string
	TokenTTL  time.Duration

	// CallTimeout bounds every cross-service HTTP call.
	CallTimeout time.Duration

	// SweepInterval is how often the auction service activates pending
	// auctions and settles expired ones.
	SweepInterval time.Duration

	// MySQL DSNs per store. When empty the service falls back to its
	// in-memory store, which is the development and test mode.
	UserDSN    string
	AuctionDSN string
	BidDSN     string
}

// Load reads configuration from the environment, loading a .env file
// first when one is present.
func Load() (*Config, error) {
	// Missing .env is fine; env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{
		GatewayAddr: getEnv("GATEWAY_ADDR", ":8000"),
		UserAddr:    getEnv("USER_SERVICE_ADDR", ":8001"),
		AuctionAddr: getEnv("AUCTION_SERVICE_ADDR", ":8002"),
		BidAddr:     getEnv("BID_SERVICE_ADDR", ":8003"),
		Services: ServiceMap{
			User:    getEnv("USER_SERVICE_URL", "http://localhost:8001"),
			Auction: getEnv("AUCTION_SERVICE_URL", "http://localhost:8002"),
			Bid:     getEnv("BID_SERVICE_URL", "http://localhost:8003"),
		},
		JWTSecret:  getEnv("JWT_SECRET", ""),
		UserDSN:    getEnv("USER_DB_DSN", ""),
		AuctionDSN: getEnv("AUCTION_DB_DSN", ""),
		BidDSN:     getEnv("BID_DB_DSN", ""),
	}

	var err error
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CallTimeout, err = getDuration("CALL_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = getDuration("SWEEP_INTERVAL", 30*time.Second); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
