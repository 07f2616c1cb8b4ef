package middleware

import (
	"net/http"
	"strings"

	"influencer-api/helper"
	"influencer-api/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and stores the caller's id
// under "user_id" and the loaded user under "user".
func AuthMiddleware(authService services.AuthService, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			h.SendUnauthorizedError(c, "Authentication credentials were not provided.", h.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			h.SendUnauthorizedError(c, "Bearer token required", h.EmptyJsonMap())
			c.Abort()
			return
		}

		user, err := authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if h.GetStatusCode(err) == http.StatusUnauthorized {
				h.SendUnauthorizedError(c, err.Error(), h.EmptyJsonMap())
			} else {
				h.SendServiceError(c, err)
			}
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user", user)

		c.Next()
	}
}

// UserID returns the id stored by AuthMiddleware.
func UserID(c *gin.Context) uint {
	userID, _ := c.Get("user_id")
	id, _ := userID.(uint)
	return id
}
