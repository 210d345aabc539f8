package router

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/auth"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/checkout"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/logger"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/menu"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/middleware"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/session"
)

// Deps is everything the HTTP surface is built from.
type Deps struct {
	Logger         *logger.Logger
	AllowedOrigins []string
	TrustedProxies []string

	Signer       *auth.TokenSigner
	Sessions     session.Store
	LoginLimiter *middleware.RateLimiter

	AuthService     *auth.Service
	MenuService     *menu.Service
	CheckoutService *checkout.Service
}

func NewRouter(d Deps) (*gin.Engine, error) {
	r := gin.New()

	// The login limiter keys on ClientIP, so forwarded headers count only
	// from listed proxies.
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	r.Use(
		middleware.RequestLogger(d.Logger),
		gin.Recovery(),
		cors.New(corsConfig(d.AllowedOrigins)),
	)

	authHandler := auth.NewHandler(d.AuthService)
	menuHandler := menu.NewHandler(d.MenuService)
	checkoutHandler := checkout.NewHandler(d.CheckoutService, d.Logger)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ───────────────────────── PORTALS ─────────────────────────
	r.GET("/portals", authHandler.ListPortals)
	r.GET("/portals/:portal", authHandler.GetPortal)

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		login := []gin.HandlerFunc{authHandler.Login}
		if d.LoginLimiter != nil {
			login = append([]gin.HandlerFunc{d.LoginLimiter.Middleware()}, login...)
		}
		authGroup.POST("/login", login...)

		authGroup.POST("/logout",
			middleware.AuthMiddleware(d.Signer, d.Sessions),
			authHandler.Logout,
		)
	}

	// ───────────────────────── STUDENT ─────────────────────────
	student := r.Group("")
	student.Use(
		middleware.AuthMiddleware(d.Signer, d.Sessions),
		middleware.RequireRole(auth.PortalStudent),
	)
	{
		student.GET("/me", authHandler.Me)

		student.GET("/menu", menuHandler.List)
		student.GET("/menu/categories", menuHandler.Categories)
		student.GET("/menu/items/:id", menuHandler.Get)

		student.GET("/cart", checkoutHandler.Sheet)
		student.PUT("/cart/sheet", checkoutHandler.SetSheet)
		student.POST("/cart/items", checkoutHandler.AddItem)
		student.PUT("/cart/items/:id", checkoutHandler.UpdateQuantity)
		student.POST("/cart/items/:id/increment", checkoutHandler.Increment)
		student.POST("/cart/items/:id/decrement", checkoutHandler.Decrement)
		student.DELETE("/cart/items/:id", checkoutHandler.RemoveItem)

		student.POST("/checkout", checkoutHandler.Proceed)
		student.GET("/checkout", checkoutHandler.Dialog)
		student.PUT("/checkout/payment-method", checkoutHandler.SelectPaymentMethod)
		student.POST("/checkout/cancel", checkoutHandler.Cancel)
		student.POST("/checkout/order", checkoutHandler.PlaceOrder)
	}

	return r, nil
}

// corsConfig allows any origin, without credentials, when the list is
// empty or holds "*".
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
