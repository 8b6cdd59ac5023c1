package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brightup/admin-gateway/internal/session"
	appErrors "github.com/brightup/admin-gateway/pkg/errors"
	"github.com/brightup/admin-gateway/pkg/response"
)

// ContextSessionKey is the gin context key storing the restored session.
const ContextSessionKey = "currentSession"

// SessionGuard protects routes by requiring a live gateway session. An
// expired or undecodable stored token is treated as "not logged in": the
// store has already cleared it, and the caller simply gets a 401.
func SessionGuard(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "invalid authorization header"))
			c.Abort()
			return
		}

		sess, err := store.Restore(c.Request.Context(), parts[1])
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if sess == nil {
			response.Error(c, appErrors.ErrSessionExpired)
			c.Abort()
			return
		}

		c.Set(ContextSessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session attached by SessionGuard. Handlers
// behind the guard may rely on a non-nil result.
func CurrentSession(c *gin.Context) *session.Session {
	if v, exists := c.Get(ContextSessionKey); exists {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}
