package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the API reads from the environment.
type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Canteen CanteenConfig
}

type ServerConfig struct {
	Port           string
	AppEnv         string
	AllowedOrigins []string
	// TrustedProxies may set X-Forwarded-For. Empty means the peer
	// address is always the client IP.
	TrustedProxies []string
}

type AuthConfig struct {
	JWTSecret      string
	SessionTTL     time.Duration
	LoginRateRPS   float64
	LoginRateBurst int
}

// CanteenConfig carries the per-session constants of the ordering flow.
type CanteenConfig struct {
	WalletBalance int64
	TaxPercent    int64
}

// Load reads .env (outside production) and then the process environment.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:   getEnv("PORT", "8080"),
			AppEnv: getEnv("APP_ENV", "development"),
			AllowedOrigins: splitList(getEnv(
				"CORS_ORIGINS",
				"http://localhost:3000,http://localhost:5173",
			)),
			TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
	}

	var err error

	if cfg.Auth.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.Auth.LoginRateRPS, err = strconv.ParseFloat(getEnv("LOGIN_RATE_RPS", "1"), 64); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_RPS: %w", err)
	}
	if cfg.Auth.LoginRateBurst, err = strconv.Atoi(getEnv("LOGIN_RATE_BURST", "5")); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_BURST: %w", err)
	}
	if cfg.Canteen.WalletBalance, err = strconv.ParseInt(getEnv("WALLET_BALANCE", "500"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid WALLET_BALANCE: %w", err)
	}
	if cfg.Canteen.TaxPercent, err = strconv.ParseInt(getEnv("TAX_PERCENT", "5"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid TAX_PERCENT: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fails fast on settings the API cannot run without.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Auth.LoginRateRPS <= 0 || c.Auth.LoginRateBurst <= 0 {
		return errors.New("login rate limit must be positive")
	}
	if c.Canteen.WalletBalance < 0 {
		return errors.New("WALLET_BALANCE cannot be negative")
	}
	if c.Canteen.TaxPercent < 0 || c.Canteen.TaxPercent > 100 {
		return errors.New("TAX_PERCENT must be between 0 and 100")
	}
	return nil
}

// Addr is the listen address for http.Server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
