package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/pkg/logging"
)

const identityKey = "identity"

// RequireAuth extracts and verifies the bearer token from the Authorization
// header. A missing token is 401; an invalid or expired one is 403. The
// decoded claims are attached to the request context for the handlers.
func RequireAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(c, NewAuthError("missing bearer token"), nil)
			return
		}

		claims, err := authService.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(c, NewForbiddenError("invalid or expired token"), nil)
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// identityFrom returns the decoded claims attached by RequireAuth
func identityFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// RequestLogger logs each request with method, path, status and duration
func RequestLogger() gin.HandlerFunc {
	logger := logging.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
