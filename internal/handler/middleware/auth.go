package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"fleetbook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxRoleKey = "auth_role"

type AuthMiddleware struct {
	jwtService *jwt.Service
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// RequireAdmin guards the approval and fleet management surface. The
// public booking endpoints stay open.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if claims.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// IsAdmin reports whether the request carries a valid admin token
// without rejecting the request when it does not.
func (m *AuthMiddleware) IsAdmin(c *gin.Context) bool {
	token := bearerToken(c)
	if token == "" {
		return false
	}
	claims, err := m.jwtService.ValidateToken(token)
	return err == nil && claims.Role == "admin"
}

func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	r, ok := role.(string)
	return r, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}
