package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/zlog"

	"github.com/alzcare/notifier/internal/api/respond"
)

// UserIDKey is the context key under which the authenticated user's
// identifier is stored.
const UserIDKey = "userID"

// Verifier resolves a bearer token to a user identifier.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Auth validates the Authorization header against the auth service and
// stores the resolved user ID in the request context.
func Auth(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("missing bearer token"))
			c.Abort()
			return
		}

		userID, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			zlog.Logger.Warn().Err(err).Msg("failed to verify token")
			respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid token"))
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
