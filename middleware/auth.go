package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "arenaslot/database/repository/user"
	"arenaslot/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token and attaches the caller's
// identity to the request context. Validated token hashes are cached in
// Redis so the user lookup is skipped on repeat requests; a cache outage
// degrades to a database lookup rather than rejecting traffic. Every failure
// path answers a uniform "denied" without detailing which check tripped.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
			return
		}

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + claims.UserID

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil

		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil && cachedHash == computedHash {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				setIdentity(c, claims)
				c.Next()
				return
			}
			if err != nil && err != redis.Nil {
				utils.GetLogger().Warn("auth cache unavailable, falling back to DB lookup", zap.Error(err))
			}
		}

		// Cache miss: confirm the subject still exists.
		usr, err := repo.GetByIDWithProjection(claims.UserID, bson.M{"id": 1})
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		setIdentity(c, claims)
		c.Next()
	}
}

func setIdentity(c *gin.Context, claims *utils.TokenClaims) {
	c.Set("userID", claims.UserID)
	c.Set("userRole", claims.Role)
	c.Set("userFullName", claims.FullName)
	c.Set("userEmail", claims.Email)
}
