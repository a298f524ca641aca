package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/gin-gonic/gin"
)

type ctxKey string

const (
	userIDKey  ctxKey = "userID"
	tokenIDKey ctxKey = "tokenID"
)

// RequireAuth admits a request only with a valid, unrevoked token in the
// Authorization header and attaches the token subject as the caller
// identity. It is the only place that identity is produced.
func (s *HTTPServer) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(common.AccessTokenHeaderName))
		raw = strings.TrimSpace(strings.TrimPrefix(raw, common.BearerPrefix))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, message(msgNoToken))
			return
		}

		claims, err := s.verifier.Verify(raw)
		if err != nil {
			level := s.logger.Warn
			if errors.Is(err, common.ErrTokenExpired) {
				level = s.logger.Info
			}
			level(c.Request.Context(), "token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, message(msgInvalidToken))
			return
		}

		if s.revoked != nil && s.revoked.IsRevoked(claims.ID) {
			s.logger.Info(c.Request.Context(), "revoked token presented", "user_id", claims.UserID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, message(msgInvalidToken))
			return
		}

		c.Set(string(userIDKey), claims.UserID)
		c.Set(string(tokenIDKey), claims.ID)
		c.Next()
	}
}

// identityFrom returns the caller identity set by RequireAuth.
func identityFrom(c *gin.Context) (string, bool) {
	id := c.GetString(string(userIDKey))
	return id, id != ""
}

func tokenIDFrom(c *gin.Context) string {
	return c.GetString(string(tokenIDKey))
}

func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
