package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lifeline-salud/backend/internal/model"
	"github.com/lifeline-salud/backend/internal/service"
	"go.uber.org/zap"
)

const (
	authUserKey  = "auth_user"
	authTokenKey = "auth_token"
	requestIDKey = "request_id"
)

// SessionGuard gates protected routes. Per request: extract the token
// (cookie first, then Authorization header), verify signature and expiry,
// then confirm an active session row still exists for (userId, token).
// The session lookup hits the store on every request; a revoked session
// is rejected immediately, regardless of token expiry.
func SessionGuard(authService *service.AuthService) gin.HandlerFunc {
	cookieName := authService.CookieConfig().Name

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token := extractToken(c, cookieName)
		if token == "" {
			c.JSON(http.StatusForbidden, model.Fail("authentication failed", "no token provided"))
			c.Abort()
			return
		}

		user, err := authService.ParseToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, model.Fail("authentication failed", "invalid or expired token"))
			c.Abort()
			return
		}

		if err := authService.ValidateSession(c.Request.Context(), user.ID, token); err != nil {
			if errors.Is(err, service.ErrInvalidSession) {
				c.JSON(http.StatusUnauthorized, model.Fail("authentication failed", "invalid session"))
			} else {
				c.JSON(http.StatusInternalServerError, model.Fail("authentication failed", "server error"))
			}
			c.Abort()
			return
		}

		c.Set(authUserKey, user)
		c.Set(authTokenKey, token)
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

func GetAuthUser(c *gin.Context) *model.AuthUser {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}

func GetAuthToken(c *gin.Context) string {
	return c.GetString(authTokenKey)
}

func CORSMiddleware(allowedOrigins []string, allowCredentials bool) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				if allowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestLogger tags each request with an id and logs method, path,
// status and latency once the handler chain finishes.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		logger.Info("request",
			zap.String("requestId", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
