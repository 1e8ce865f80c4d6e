package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/core/auth"
	"storefront-api/internal/domain"
	resp "storefront-api/internal/transport/http/response"
)

const KeyClaims = "claims"

func AuthJWT(j *auth.JWTer, requireRole domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.Abort()
			resp.Message(c, http.StatusUnauthorized, "Missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.Abort()
			resp.Message(c, http.StatusUnauthorized, "Invalid token")
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.Abort()
			resp.Message(c, http.StatusForbidden, "Forbidden")
			return
		}
		c.Set(KeyClaims, claims)
		c.Next()
	}
}
