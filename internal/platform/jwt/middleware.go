package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the Gin context key under which the verified user ID is
// stored for downstream handlers.
const ContextUserID = "userID"

// AuthRequired returns a Gin middleware function that validates bearer tokens
// and restricts access to authenticated users only.
// Every failure is a uniform 401 so callers cannot distinguish a missing
// token from a forged or expired one.
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and expiry
		userID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		// 3. Expose the verified identity to handlers
		c.Set(ContextUserID, userID)

		// 4. Pass control to the next handler
		c.Next()
	}
}
