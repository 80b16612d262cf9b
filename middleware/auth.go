package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"eraflix/utils"
)

// authenticate validates the bearer token against the external auth
// service's signing key and the revocation set, returning the subject and
// role claims. This backend never issues tokens.
func authenticate(c *gin.Context, authCache *redis.Client) (subject, role string, ok bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return "", "", false
	}

	subject, role, err := utils.ExtractClaimsFromToken(tokenString)
	if err != nil || subject == "" {
		return "", "", false
	}

	if authCache != nil {
		revoked, err := utils.IsTokenRevoked(authCache, utils.HashToken(tokenString))
		if err != nil || revoked {
			return "", "", false
		}
	}
	return subject, role, true
}

// JWTAuthMiddleware requires any authenticated caller.
func JWTAuthMiddleware(authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, role, ok := authenticate(c, authCache)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		c.Set("userID", subject)
		c.Set("role", role)
		c.Next()
	}
}

// JWTAuthAdminMiddleware requires an elevated caller (role claim "admin").
func JWTAuthAdminMiddleware(authCache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, role, ok := authenticate(c, authCache)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Set("userID", subject)
		c.Set("isAdmin", true)
		c.Next()
	}
}
