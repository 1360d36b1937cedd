package middleware

import "github.com/gin-gonic/gin"

// IdentityHeader carries the caller's identity. It is trusted as given;
// there is no session or token layer in front of it.
const IdentityHeader = "user-id"

const identityKey = "userId"

// Identity copies the identity header into the request context. It never
// rejects: a missing or malformed header is handled downstream, where an
// empty identity fails the ownership check or the header format validation.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, c.GetHeader(IdentityHeader))
		c.Next()
	}
}

// GetUserID returns the caller identity placed in the context by Identity.
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(identityKey)
	if !exists {
		return "", false
	}
	return userID.(string), true
}
