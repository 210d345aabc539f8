package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/auth"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/checkout"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/config"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/logger"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/menu"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/middleware"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/router"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/session"
)

const (
	janitorInterval = time.Minute
	limiterIdle     = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	log := logger.New("canteen-api")

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Error("startup", "", "failed to load config", err)
		os.Exit(1)
	}
	if cfg.Server.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ───────────────────────── SESSIONS ─────────────────────────
	sessions := session.NewInMemoryStore(cfg.Auth.SessionTTL)
	go sessions.RunJanitor(ctx, janitorInterval, func(n int) {
		log.Debug("session_evict", "", "expired sessions evicted", slog.Int("count", n))
	})

	signer, err := auth.NewTokenSigner(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	if err != nil {
		log.Error("startup", "", "failed to create token signer", err)
		os.Exit(1)
	}

	loginLimiter := middleware.NewRateLimiter(cfg.Auth.LoginRateRPS, cfg.Auth.LoginRateBurst, limiterIdle)
	go loginLimiter.Run(ctx, janitorInterval)

	// ───────────────────────── SERVICES ─────────────────────────
	menuService := menu.NewService(menu.NewInMemoryRepository(menu.DefaultItems()))
	authService := auth.NewService(sessions, signer, cfg.Canteen.WalletBalance)
	checkoutService := checkout.NewService(sessions, menuService, cfg.Canteen.TaxPercent)

	r, err := router.NewRouter(router.Deps{
		Logger:          log,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		TrustedProxies:  cfg.Server.TrustedProxies,
		Signer:          signer,
		Sessions:        sessions,
		LoginLimiter:    loginLimiter,
		AuthService:     authService,
		MenuService:     menuService,
		CheckoutService: checkoutService,
	})
	if err != nil {
		log.Error("startup", "", "failed to build router", err)
		os.Exit(1)
	}

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("startup", "", "api listening", slog.String("addr", srv.Addr), slog.String("env", cfg.Server.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown", "", "signal received, shutting down")
	case err := <-errCh:
		log.Error("startup", "", "server failed", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "", "graceful shutdown failed", err)
		os.Exit(1)
	}
	log.Info("shutdown", "", "server stopped")
}
