package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/subvault/subvault-api/internal/api/shared/errors"
	"github.com/subvault/subvault-api/internal/auth"
	"github.com/subvault/subvault-api/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	USER_ID_KEY      contextKey = "user_id"
	USER_ADDRESS_KEY contextKey = "user_address"
)

// SessionParser validates session tokens; auth.Service satisfies it
type SessionParser interface {
	ParseSession(token string) (*auth.Claims, error)
}

// Authenticate extracts the bearer token from an Authorization header and
// validates it
func Authenticate(authHeader string, sessions SessionParser) (*auth.Claims, error) {
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, errors.New("invalid Authorization header format")
	}

	return sessions.ParseSession(strings.TrimSpace(parts[1]))
}

// Auth returns a gin middleware that requires a valid session and stores the
// caller's identity in the context
func Auth(sessions SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := Authenticate(c.GetHeader("Authorization"), sessions)
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed").Response())
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed").Response())
			return
		}

		c.Set(USER_ID_KEY, userID)
		c.Set(USER_ADDRESS_KEY, claims.Address)

		c.Next()
	}
}

// UserID returns the authenticated caller set by Auth
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(USER_ID_KEY)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
