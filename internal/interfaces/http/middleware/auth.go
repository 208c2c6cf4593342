package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fractalyx/internal/infrastructure/auth"
	"fractalyx/internal/shared/logger"
	"fractalyx/internal/shared/utils"
)

// ContextKeyCustomerID is where RequireAuth stores the authenticated
// customer's ID on the gin context.
const ContextKeyCustomerID = "customer_id"

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(ContextKeyCustomerID, claims.CustomerID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

// CustomerID extracts the authenticated customer ID set by RequireAuth.
func CustomerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextKeyCustomerID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
