// README: Firebase ID-token auth middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripsmith/internal/infra"
)

const callerUIDKey = "caller_uid"

// Auth verifies the Bearer ID token and stores the caller UID in the gin
// context. Requests without a valid token are rejected.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := verifyRequest(c, verifier)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing credentials"})
			return
		}
		c.Set(callerUIDKey, uid)
		c.Next()
	}
}

// AuthOptional verifies the token when one is presented but lets anonymous
// requests through. Used on generation routes, which work without an account.
func AuthOptional(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if uid, ok := verifyRequest(c, verifier); ok {
				c.Set(callerUIDKey, uid)
			}
		}
		c.Next()
	}
}

// CallerUID returns the verified UID for this request, or "" for anonymous
// callers.
func CallerUID(c *gin.Context) string {
	return c.GetString(callerUIDKey)
}

func verifyRequest(c *gin.Context, verifier infra.TokenVerifier) (string, bool) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}
	verified, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimSpace(token))
	if err != nil || verified.UID == "" {
		return "", false
	}
	return verified.UID, true
}
