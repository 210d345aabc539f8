package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/notify"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type loginRequest struct {
	Portal   string `json:"portal"`
	IDNumber string `json:"id_number"`
	Password string `json:"password"`
}

// --------------------------------------------------
// GET /portals
// --------------------------------------------------
func (h *Handler) ListPortals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":    "Select Your Portal",
		"portals":  h.service.Portals(),
		"selected": nil,
	})
}

// --------------------------------------------------
// GET /portals/:portal
// --------------------------------------------------
func (h *Handler) GetPortal(c *gin.Context) {
	form, err := h.service.LoginForm(c.Param("portal"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, form)
}

// --------------------------------------------------
// POST /auth/login
// --------------------------------------------------
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.service.Login(req.Portal, req.IDNumber, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, ErrUnknownPortal):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        err.Error(),
			"notification": notify.Failure("Error", "Please enter both ID and password"),
		})
		return
	case errors.Is(err, ErrPortalUnavailable):
		c.JSON(http.StatusNotImplemented, gin.H{
			"error":        err.Error(),
			"notification": notify.Info("Coming Soon", fmt.Sprintf("%s portal will be available soon!", req.Portal)),
		})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        result.Token,
		"token_type":   result.TokenType,
		"expires_at":   result.ExpiresAt,
		"redirect":     result.Redirect,
		"notification": notify.Info("Login Successful", "Welcome to the canteen!"),
	})
}

// --------------------------------------------------
// POST /auth/logout
// --------------------------------------------------
func (h *Handler) Logout(c *gin.Context) {
	sessionID, ok := SessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	redirect, err := h.service.Logout(sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"redirect":     redirect,
		"notification": notify.Info("Logged out", "You have been logged out successfully"),
	})
}

// --------------------------------------------------
// GET /me
// --------------------------------------------------
func (h *Handler) Me(c *gin.Context) {
	sessionID, ok := SessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	header, err := h.service.Header(sessionID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, header)
}
