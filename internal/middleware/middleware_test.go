package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/auth"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/logger"
	"github.com/ponmareeswaran42-rgb/smart-canteen-sys/internal/session"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth.TokenSigner, *session.InMemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	signer, err := auth.NewTokenSigner("test-secret-key-for-testing-only", time.Hour)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}
	store := session.NewInMemoryStore(time.Hour)

	router := gin.New()
	router.Use(AuthMiddleware(signer, store))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"sessionID": c.GetString(auth.ContextSessionID),
			"idNumber":  c.GetString(auth.ContextIDNumber),
		})
	})

	return router, signer, store
}

// TestAuthMiddleware_MissingAuthHeader tests the middleware with missing Authorization header
func TestAuthMiddleware_MissingAuthHeader(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAuthMiddleware_InvalidAuthFormat tests the middleware with invalid Bearer format
func TestAuthMiddleware_InvalidAuthFormat(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAuthMiddleware_InvalidToken tests the middleware with an invalid token
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid_token_xyz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

// TestAuthMiddleware_ValidToken tests the middleware with a live session
func TestAuthMiddleware_ValidToken(t *testing.T) {
	router, signer, store := setupAuthRouter(t)

	sess, _ := store.Create("student", "S-101", 500)
	token, _, err := signer.GenerateToken(sess.ID, "S-101", "student")
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), sess.ID) {
		t.Errorf("expected session id in context, got %s", w.Body.String())
	}
}

// TestAuthMiddleware_LoggedOutSession rejects a valid token whose session is gone
func TestAuthMiddleware_LoggedOutSession(t *testing.T) {
	router, signer, store := setupAuthRouter(t)

	sess, _ := store.Create("student", "S-101", 500)
	token, _, _ := signer.GenerateToken(sess.ID, "S-101", "student")
	_ = store.Delete(sess.ID)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		role string
		want int
	}{
		{"student", http.StatusOK},
		{"admin", http.StatusForbidden},
		{"", http.StatusForbidden},
	}

	for _, tt := range tests {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if tt.role != "" {
				c.Set(auth.ContextRole, tt.role)
			}
		})
		router.Use(RequireRole(auth.PortalStudent))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != tt.want {
			t.Errorf("role %q: expected status %d, got %d", tt.role, tt.want, w.Code)
		}
	}
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(0.001, 2, time.Minute)
	router := gin.New()
	router.Use(limiter.Middleware())
	router.POST("/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %d", codes[2])
	}

	// another client has its own bucket
	req := httptest.NewRequest("POST", "/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected other client to pass, got %d", w.Code)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(1, 1, 0)
	limiter.limiterFor("10.0.0.1")
	time.Sleep(time.Millisecond)

	if removed := limiter.Cleanup(); removed != 1 {
		t.Fatalf("expected 1 limiter removed, got %d", removed)
	}
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(logger.NewWithWriter("test", &buf)))

	var seen string
	router.GET("/health", func(c *gin.Context) {
		seen = RequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if seen != "req-42" {
		t.Fatalf("expected request id req-42, got %q", seen)
	}
	if w.Header().Get("X-Request-ID") != "req-42" {
		t.Fatalf("expected request id echoed in header")
	}
	if !strings.Contains(buf.String(), `"request_id":"req-42"`) {
		t.Fatalf("expected request id in log line, got %s", buf.String())
	}
}
