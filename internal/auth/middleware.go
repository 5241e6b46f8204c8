package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CredentialKey is the gin context key holding the request's bearer token.
const CredentialKey = "credential"

// BearerToken extracts the token from an Authorization header value.
// It returns "" if the header is not a bearer credential.
func BearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CredentialMiddleware stores the bearer token, if any, under CredentialKey.
// Verification is left to the handler's service so that rejected requests
// never reach the store.
func CredentialMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := BearerToken(c.GetHeader("Authorization")); token != "" {
			c.Set(CredentialKey, token)
		}
		c.Next()
	}
}
