// README: Bearer-token auth middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lushu/internal/infra"
)

const uidContextKey = "uid"

// Auth verifies the Authorization bearer token and stores the caller's uid
// in the request context. Requests without a valid token get a 401.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		id, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(uidContextKey, id.UID)
		c.Next()
	}
}

// CallerUID returns the authenticated user id set by Auth, or "" when the
// request skipped the middleware.
func CallerUID(c *gin.Context) string {
	return c.GetString(uidContextKey)
}
