package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ffauzan/nc-api/internal/service"
	"github.com/gin-gonic/gin"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func setupAuthMiddlewareRouter(jwtService service.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", RequireAuth(jwtService), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  UserID(c),
			"username": Username(c),
		})
	})
	return router
}

func performWithToken(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidToken(t *testing.T) {
	jwtService := service.NewJWTService(testSecret, time.Hour)
	router := setupAuthMiddlewareRouter(jwtService)

	token, err := jwtService.GenerateAccessToken(7, "testuser")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	w := performWithToken(router, "Bearer "+token)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", w.Code, w.Body.String())
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	router := setupAuthMiddlewareRouter(service.NewJWTService(testSecret, time.Hour))

	w := performWithToken(router, "")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	router := setupAuthMiddlewareRouter(service.NewJWTService(testSecret, time.Hour))

	w := performWithToken(router, "Token abc")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expired := service.NewJWTService(testSecret, -time.Minute)
	router := setupAuthMiddlewareRouter(service.NewJWTService(testSecret, time.Hour))

	token, err := expired.GenerateAccessToken(7, "testuser")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	w := performWithToken(router, "Bearer "+token)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestUserID_OutsideAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if got := UserID(c); got != 0 {
		t.Errorf("UserID() = %d, want 0", got)
	}
	if got := Username(c); got != "" {
		t.Errorf("Username() = %q, want empty", got)
	}
}

func TestRequestID_GeneratedAndPreserved(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Generated when absent
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("response should carry a generated request id")
	}

	// Preserved when supplied
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "fixed-id" {
		t.Errorf("request id = %q, want fixed-id", got)
	}
}
