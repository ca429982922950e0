package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"docvault/internal/pkg/jwtutil"
	"docvault/internal/transport/http/response"
)

// ContextSubjectKey holds the authenticated username for downstream handlers.
const ContextSubjectKey = "subject"

// AuthJWT rejects requests without a valid bearer token. Every validation
// failure (missing header, wrong scheme, bad signature, expired) maps to the
// same 401.
func AuthJWT(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Error(c, http.StatusUnauthorized, "invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextSubjectKey, claims.Subject)
		c.Next()
	}
}
