package middleware

import (
	"strings"

	"daytour/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OptionalIdentityMiddleware extracts the traveler id from a bearer token when
// one is present. Tour endpoints stay usable anonymously, so a missing or
// invalid token only means content-only ranking downstream, never a 401.
func OptionalIdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil || claims == nil || claims.UserID == "" {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
