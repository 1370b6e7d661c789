package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the request-context key for the authenticated user's id.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user id set by the auth
// middleware. It returns the id and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
