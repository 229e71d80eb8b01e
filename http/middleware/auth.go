package middlewares

import (
	"github.com/feedhub/feedhub-service/config"
	"github.com/feedhub/feedhub-service/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware guards routes behind a valid bearer token and injects the
// caller's user_id into the gin context.
func AuthMiddleware(cfg *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := utils.ExtractToken(c)
		if tokenString == "" {
			utils.JSON401(c, "No token provided")
			c.Abort()
			return
		}

		token, err := utils.ParseToken(tokenString, cfg)
		if err != nil || !token.Valid {
			utils.JSON401(c, "Invalid token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSON401(c, "Invalid token")
			c.Abort()
			return
		}

		if err := utils.InjectClaimsToContext(c, claims); err != nil {
			utils.JSON401(c, "Invalid token")
			c.Abort()
			return
		}

		c.Next()
	}
}
