// Package middleware provides HTTP middleware for the NextCourse API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/ffauzan/nc-api/internal/service"
	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// RequireAuth validates the bearer token and stores the caller's identity in
// the request context. Requests without a valid token are rejected.
func RequireAuth(jwtService service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

// UserID returns the authenticated user's id, or 0 outside RequireAuth.
func UserID(c *gin.Context) int64 {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// Username returns the authenticated user's name, or "" outside RequireAuth.
func Username(c *gin.Context) string {
	if v, ok := c.Get(ContextUsername); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	parts := strings.Split(bearerToken, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
		"data":    gin.H{},
	})
}
