package checkout

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/auth"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/logger"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/menu"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/notify"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/session"
)

func setupCheckoutRouter(t *testing.T, wallet int64) (*gin.Engine, string, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewInMemoryStore(time.Hour)
	menuService := menu.NewService(menu.NewInMemoryRepository(testItems()))
	var logs bytes.Buffer
	handler := NewHandler(NewService(store, menuService, 5), logger.NewWithWriter("test", &logs))

	sess, err := store.Create("student", "STU001", wallet)
	require.NoError(t, err)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Session"); id != "" {
			c.Set(auth.ContextSessionID, id)
		}
		c.Next()
	})

	r.GET("/cart", handler.Sheet)
	r.PUT("/cart/sheet", handler.SetSheet)
	r.POST("/cart/items", handler.AddItem)
	r.PUT("/cart/items/:id", handler.UpdateQuantity)
	r.POST("/cart/items/:id/increment", handler.Increment)
	r.POST("/cart/items/:id/decrement", handler.Decrement)
	r.DELETE("/cart/items/:id", handler.RemoveItem)
	r.POST("/checkout", handler.Proceed)
	r.GET("/checkout", handler.Dialog)
	r.PUT("/checkout/payment-method", handler.SelectPaymentMethod)
	r.POST("/checkout/cancel", handler.Cancel)
	r.POST("/checkout/order", handler.PlaceOrder)

	return r, sess.ID, &logs
}

func do(r *gin.Engine, method, path, sessionID, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set("X-Session", sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type notificationResponse struct {
	Error        string               `json:"error"`
	Notification *notify.Notification `json:"notification"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestCartHandlers_RequireSession(t *testing.T) {
	r, _, _ := setupCheckoutRouter(t, 500)

	w := do(r, http.MethodGet, "/cart", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/cart", "gone", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddItem(t *testing.T) {
	r, id, _ := setupCheckoutRouter(t, 500)

	w := do(r, http.MethodPost, "/cart/items", id, `{"item_id":"1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cart         SheetView            `json:"cart"`
		Notification *notify.Notification `json:"notification"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 1, resp.Cart.ItemsCount)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, "Added to cart", resp.Notification.Title)
	assert.Equal(t, "Masala Dosa added successfully", resp.Notification.Description)
	assert.Equal(t, notify.VariantDefault, resp.Notification.Variant)
}

func TestAddItem_Errors(t *testing.T) {
	r, id, _ := setupCheckoutRouter(t, 500)

	w := do(r, http.MethodPost, "/cart/items", id, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/cart/items", id, `{"item_id":"404"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/cart/items", id, `{"item_id":"99"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	var resp notificationResponse
	decode(t, w, &resp)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, "Out of Stock", resp.Notification.Title)
	assert.Equal(t, notify.VariantDestructive, resp.Notification.Variant)
}

func TestQuantityHandlers(t *testing.T) {
	r, id, _ := setupCheckoutRouter(t, 500)
	do(r, http.MethodPost, "/cart/items", id, `{"item_id":"10"}`)

	w := do(r, http.MethodPut, "/cart/items/10", id, `{"quantity":3}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/cart/items/10/increment", id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/cart/items/10/decrement", id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cart SheetView `json:"cart"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 3, resp.Cart.ItemsCount)
	assert.Equal(t, int64(45), resp.Cart.Bill.Subtotal)

	w = do(r, http.MethodPut, "/cart/items/10", id, `{"quantity":-2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/cart/items/10", id, `{"quantity":184467440737095517}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/cart/items/10", id, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodDelete, "/cart/items/10", id, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.True(t, resp.Cart.Empty)

	w = do(r, http.MethodDelete, "/cart/items/10", id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetSheet(t *testing.T) {
	r, id, _ := setupCheckoutRouter(t, 500)

	w := do(r, http.MethodPut, "/cart/sheet", id, `{"open":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/cart", id, "")
	var resp struct {
		Cart SheetView `json:"cart"`
	}
	decode(t, w, &resp)
	assert.True(t, resp.Cart.Open)

	w = do(r, http.MethodPut, "/cart/sheet", id, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProceed_EmptyCart(t *testing.T) {
	r, id, _ := setupCheckoutRouter(t, 500)

	w := do(r, http.MethodPost, "/checkout", id, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp notificationResponse
	decode(t, w, &resp)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, "Cart is empty", resp.Notification.Title)
	assert.Equal(t, "Please add items to cart before checkout", resp.Notification.Description)

	w = do(r, http.MethodGet, "/checkout", id, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPlaceOrder_InsufficientBalanceHandler(t *testing.T) {
	r, id, _ := setupCheckoutRouter(t, 40)
	do(r, http.MethodPost, "/cart/items", id, `{"item_id":"1"}`)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/checkout", id, "").Code)

	w := do(r, http.MethodPost, "/checkout/order", id, "")
	require.Equal(t, http.StatusPaymentRequired, w.Code)

	var resp notificationResponse
	decode(t, w, &resp)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, "Insufficient balance", resp.Notification.Title)
	assert.Equal(t, notify.VariantDestructive, resp.Notification.Variant)

	w = do(r, http.MethodGet, "/checkout", id, "")
	assert.Equal(t, http.StatusOK, w.Code, "dialog stays open")
}

func TestPlaceOrder_SuccessHandler(t *testing.T) {
	r, id, logs := setupCheckoutRouter(t, 500)
	do(r, http.MethodPost, "/cart/items", id, `{"item_id":"1"}`)
	do(r, http.MethodPost, "/cart/items", id, `{"item_id":"4"}`)
	do(r, http.MethodPut, "/cart/sheet", id, `{"open":true}`)
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/checkout", id, "").Code)

	w := do(r, http.MethodPut, "/checkout/payment-method", id, `{"method":"bitcoin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPut, "/checkout/payment-method", id, `{"method":"cash"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/checkout/order", id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Order        Receipt              `json:"order"`
		Cart         SheetView            `json:"cart"`
		Notification *notify.Notification `json:"notification"`
	}
	decode(t, w, &resp)

	assert.Equal(t, PaymentCash, resp.Order.PaymentMethod)
	assert.Equal(t, int64(137), resp.Order.Bill.Total)
	assert.False(t, resp.Cart.Open)
	assert.Equal(t, 2, resp.Cart.ItemsCount)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, "Order placed successfully!", resp.Notification.Title)
	assert.Equal(t, "Your order of ₹130 has been placed. You'll be notified when it's ready.", resp.Notification.Description)

	assert.Contains(t, logs.String(), `"action":"order_placed"`)

	w = do(r, http.MethodPost, "/checkout/order", id, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelHandler(t *testing.T) {
	r, id, _ := setupCheckoutRouter(t, 500)
	do(r, http.MethodPost, "/cart/items", id, `{"item_id":"1"}`)
	do(r, http.MethodPost, "/checkout", id, "")

	w := do(r, http.MethodPost, "/checkout/cancel", id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/checkout", id, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}
