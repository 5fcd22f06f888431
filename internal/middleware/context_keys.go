package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// authTokenKey is the key used to store the raw bearer token so the
// upstream client can forward it.
const authTokenKey = contextKey("authToken")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetAuthTokenFromCtx retrieves the raw bearer token from a standard
// context, "" when absent.
func GetAuthTokenFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(authTokenKey).(string)
	return token
}

// ContextWithAuthToken stores a raw bearer token in a standard context.
func ContextWithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, authTokenKey, token)
}
