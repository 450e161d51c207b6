// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"hostelhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// sessionSubject validates the bearer token on the request, consulting the
// Redis session cache first. It returns the subject id and role, or aborts the
// request with 401.
func sessionSubject(c *gin.Context) (string, string, bool) {
	logger := zap.L()
	ctx := context.Background()

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
		c.Abort()
		return "", "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	subject, role, err := utils.ExtractSessionClaims(tokenString)
	if err != nil || subject == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid session token")
		c.Abort()
		return "", "", false
	}

	cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
	authCache := utils.GetAuthCacheClient()

	if cached, err := authCache.Get(ctx, cacheKey).Result(); err == nil && cached == "1" {
		// Sliding expiration on an already-seen session.
		if err := authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err(); err != nil {
			logger.Error("Failed to refresh session cache TTL", zap.Error(err))
		}
		return subject, role, true
	} else if err != nil && err != redis.Nil {
		logger.Error("Error checking session cache", zap.Error(err))
	}

	if err := authCache.Set(ctx, cacheKey, "1", utils.AuthCacheTTL).Err(); err != nil {
		logger.Error("Failed to set session cache", zap.Error(err))
	}
	return subject, role, true
}

// SessionAuthMiddleware validates the session token and stores the subject id
// in the context under "sessionID".
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, role, ok := sessionSubject(c)
		if !ok {
			return
		}
		c.Set("sessionID", subject)
		c.Set("sessionRole", role)
		c.Next()
	}
}

// ProviderSessionMiddleware additionally requires the provider role and stores
// the id under "providerID".
func ProviderSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, role, ok := sessionSubject(c)
		if !ok {
			return
		}
		if role != "provider" {
			utils.JSONError(c, http.StatusUnauthorized, "Provider session required")
			c.Abort()
			return
		}
		c.Set("providerID", subject)
		c.Next()
	}
}
