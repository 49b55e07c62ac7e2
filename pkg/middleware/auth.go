package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Verifier checks a raw bearer token and returns the authenticated
// subject.
type Verifier interface {
	Verify(ctx context.Context, raw string) (string, error)
}

// RequireAdmin gates a route behind bearer authentication. Missing,
// malformed, or invalid credentials all get the same 401 with a
// WWW-Authenticate challenge; the subject is stored under "username"
// for downstream handlers.
func RequireAdmin(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			unauthorized(c)
			return
		}
		username, err := v.Verify(c.Request.Context(), raw)
		if err != nil {
			unauthorized(c)
			return
		}
		c.Set("username", username)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
}
