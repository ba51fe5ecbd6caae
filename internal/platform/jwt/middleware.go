package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys under which the middleware stores the verified claims.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// Verifier validates a bearer token and returns its claims.
// Following Go convention, the interface is defined by the consumer
// (middleware) rather than the provider (Service).
type Verifier interface {
	ParseToken(tokenStr string) (*Claims, error)
}

// AuthRequired returns a Gin middleware that restricts access to
// requests carrying a valid, unexpired bearer token. Missing, malformed,
// tampered and expired tokens all produce the same 401 response so the
// caller learns nothing about which check failed.
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// 2. Verify the token; no downstream handler runs on failure
		claims, err := verifier.ParseToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		// 3. Attach the verified identity to the request context
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		// 4. Pass control to the next handler
		c.Next()
	}
}
