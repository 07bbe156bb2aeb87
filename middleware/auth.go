// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	technicianRepo "zeefreeze/database/repository/technician"
	userRepo "zeefreeze/database/repository/user"
	"zeefreeze/models"
	"zeefreeze/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
		"code":  0,
	})
}

// verifyTokenHash checks the computed hash against the auth cache, falling
// back to the stored hash on a miss. Returns whether the token is valid.
func verifyTokenHash(accountID, computedHash string, lookup func() (string, bool)) bool {
	ctx := context.Background()
	cacheKey := utils.AuthCachePrefix + accountID

	authCache := utils.GetAuthCacheClient()
	cacheEnabled := authCache != nil
	if cacheEnabled {
		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash == computedHash {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				return true
			}
			return false
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("Auth cache lookup failed; falling back to DB", zap.Error(err))
		}
	}

	storedHash, ok := lookup()
	if !ok {
		return false
	}
	if storedHash == "" || storedHash != computedHash {
		return false
	}
	if cacheEnabled {
		_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
	}
	return true
}

// TechnicianAuthMiddleware authenticates technician requests and sets
// "technicianID" in the context.
func TechnicianAuthMiddleware(techRepo technicianRepo.TechnicianRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		technicianID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || technicianID == "" {
			abortUnauthorized(c)
			return
		}
		role, err := utils.ExtractRoleFromToken(tokenString)
		if err != nil || role != models.RoleTechnician {
			abortUnauthorized(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		ok := verifyTokenHash(technicianID, computedHash, func() (string, bool) {
			tech, err := techRepo.GetByIDWithProjection(technicianID, bson.M{"id": 1, "security": 1})
			if err != nil || tech == nil {
				return "", false
			}
			return tech.Security.TokenHash, true
		})
		if !ok {
			abortUnauthorized(c)
			return
		}

		c.Set("technicianID", technicianID)
		c.Next()
	}
}

// UserAuthMiddleware authenticates client/admin requests and sets "userID"
// and "role" in the context.
func UserAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			abortUnauthorized(c)
			return
		}
		role, err := utils.ExtractRoleFromToken(tokenString)
		if err != nil || (role != models.RoleClient && role != models.RoleAdmin) {
			abortUnauthorized(c)
			return
		}

		computedHash := utils.HashToken(tokenString)
		ok := verifyTokenHash(userID, computedHash, func() (string, bool) {
			usr, err := users.GetByIDWithProjection(userID, bson.M{"id": 1, "security": 1, "role": 1})
			if err != nil || usr == nil {
				return "", false
			}
			return usr.Security.TokenHash, true
		})
		if !ok {
			abortUnauthorized(c)
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// AdminOnlyMiddleware restricts a route group to admin accounts. It must run
// after UserAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
				"code":  0,
			})
			return
		}
		c.Next()
	}
}
