package middleware

import (
	"net/http"
	"strings"

	"venuely/models"
	"venuely/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserIDKey   = "userID"
	ContextUserNameKey = "userName"
)

// JWTAuthMiddleware requires a valid bearer token and stores the caller's
// identity in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, userName, ok := identityFromHeader(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Set(ContextUserNameKey, userName)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller's identity when a valid bearer
// token is present and falls back to the shared guest identity otherwise.
// Booking and chat endpoints stay usable without an account.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, userName, ok := identityFromHeader(c)
		if !ok {
			userID = models.GuestUser.ID
			userName = models.GuestUser.Username
		}
		c.Set(ContextUserIDKey, userID)
		c.Set(ContextUserNameKey, userName)
		c.Next()
	}
}

func identityFromHeader(c *gin.Context) (string, string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return "", "", false
	}

	userID, userName, err := utils.ExtractIdentityFromToken(tokenString)
	if err != nil || userID == "" {
		return "", "", false
	}
	if userName == "" {
		userName = userID
	}
	return userID, userName, true
}
