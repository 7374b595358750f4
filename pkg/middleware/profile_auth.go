package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lounge/pkg/utils"
)

// ProfileAuthMiddleware requires a profile token and puts the profile id on
// the context for bookmark and result attribution.
func ProfileAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("profile_id", claims.ProfileID)
		c.Next()
	}
}

// OptionalProfileMiddleware parses a profile token when present but lets the
// request through either way. Quiz play does not require a profile; results
// are only attributed when one is known.
func OptionalProfileMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ValidateToken(tokenString); err == nil {
				c.Set("profile_id", claims.ProfileID)
			}
		}
		c.Next()
	}
}
