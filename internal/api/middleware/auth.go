package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/colejunck1/Task-Tracker/pkg/jwt"
	"github.com/colejunck1/Task-Tracker/pkg/redis"
	"github.com/colejunck1/Task-Tracker/pkg/response"
)

// Auth verifies the Authorization bearer token against the shared identity
// secret and rejects revoked sessions. Tokens are issued elsewhere; this
// service only observes them. A nil Redis client degrades the revocation
// check to open.
func Auth(verifier *jwt.Verifier, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "malformed authorization header")
			c.Abort()
			return
		}

		claims, err := verifier.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "invalid or expired token")
			c.Abort()
			return
		}

		if rdb != nil && claims.ID != "" {
			revoked, err := rdb.IsRevoked(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Unauthorized(c, 10002, "session revoked")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}
