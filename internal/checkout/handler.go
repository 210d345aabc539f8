package checkout

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/auth"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/cart"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/logger"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/menu"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/middleware"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/money"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/notify"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/session"
)

type Handler struct {
	service *Service
	log     *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, log: log}
}

type sheetRequest struct {
	Open *bool `json:"open" binding:"required"`
}

type addItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type paymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

type placeOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) Sheet(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	view, err := h.service.Sheet(sessionID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": view})
}

// --------------------------------------------------
// PUT /cart/sheet
// --------------------------------------------------
func (h *Handler) SetSheet(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req sheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	view, err := h.service.SetSheetOpen(sessionID, *req.Open)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": view})
}

// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
func (h *Handler) AddItem(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
		return
	}

	added, view, err := h.service.AddToCart(sessionID, req.ItemID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":         added,
		"cart":         view,
		"notification": notify.Info("Added to cart", fmt.Sprintf("%s added successfully", added.Name)),
	})
}

// --------------------------------------------------
// PUT /cart/items/:id
// --------------------------------------------------
func (h *Handler) UpdateQuantity(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	view, err := h.service.UpdateQuantity(sessionID, c.Param("id"), *req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": view})
}

// --------------------------------------------------
// POST /cart/items/:id/increment
// --------------------------------------------------
func (h *Handler) Increment(c *gin.Context) {
	h.mutate(c, h.service.Increment)
}

// --------------------------------------------------
// POST /cart/items/:id/decrement
// --------------------------------------------------
func (h *Handler) Decrement(c *gin.Context) {
	h.mutate(c, h.service.Decrement)
}

// --------------------------------------------------
// DELETE /cart/items/:id
// --------------------------------------------------
func (h *Handler) RemoveItem(c *gin.Context) {
	h.mutate(c, h.service.Remove)
}

func (h *Handler) mutate(c *gin.Context, fn func(sessionID, itemID string) (*SheetView, error)) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	view, err := fn(sessionID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart": view})
}

// --------------------------------------------------
// POST /checkout
// --------------------------------------------------
func (h *Handler) Proceed(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	view, err := h.service.ProceedToCheckout(sessionID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout": view})
}

// --------------------------------------------------
// GET /checkout
// --------------------------------------------------
func (h *Handler) Dialog(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	view, err := h.service.Dialog(sessionID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout": view})
}

// --------------------------------------------------
// PUT /checkout/payment-method
// --------------------------------------------------
func (h *Handler) SelectPaymentMethod(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req paymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "method is required"})
		return
	}

	view, err := h.service.SelectPaymentMethod(sessionID, req.Method)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout": view})
}

// --------------------------------------------------
// POST /checkout/cancel
// --------------------------------------------------
func (h *Handler) Cancel(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.service.Cancel(sessionID); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout": gin.H{"open": false}})
}

// --------------------------------------------------
// POST /checkout/order
// --------------------------------------------------
func (h *Handler) PlaceOrder(c *gin.Context) {
	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req placeOrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	receipt, err := h.service.PlaceOrder(sessionID, req.PaymentMethod)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.log.Info("order_placed", middleware.RequestID(c), "simulated order placed",
		slog.String("order_id", receipt.OrderID),
		slog.String("payment_method", string(receipt.PaymentMethod)),
		slog.Int64("subtotal", receipt.Bill.Subtotal),
		slog.Int64("total", receipt.Bill.Total),
	)

	sheet, err := h.service.Sheet(sessionID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":    receipt,
		"cart":     sheet,
		"checkout": gin.H{"open": false},
		"notification": notify.Info(
			"Order placed successfully!",
			fmt.Sprintf("Your order of %s has been placed. You'll be notified when it's ready.", money.Format(receipt.Bill.Subtotal)),
		),
	})
}

func requireSession(c *gin.Context) (string, bool) {
	sessionID, ok := auth.SessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return sessionID, true
}

// fail maps domain errors to responses. Validation failures carry the
// notification the client shows; anything unexpected is logged.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, menu.ErrItemNotFound), errors.Is(err, cart.ErrNotInCart):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrItemUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error":        err.Error(),
			"notification": notify.Failure("Out of Stock", "This item is currently unavailable"),
		})
	case errors.Is(err, cart.ErrInvalidQuantity), errors.Is(err, ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        err.Error(),
			"notification": notify.Failure("Cart is empty", "Please add items to cart before checkout"),
		})
	case errors.Is(err, ErrInsufficientBalance):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error":        err.Error(),
			"notification": notify.Failure("Insufficient balance", "Please add money to your wallet or choose another payment method"),
		})
	case errors.Is(err, ErrCheckoutClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error("checkout", middleware.RequestID(c), "unexpected checkout failure", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
