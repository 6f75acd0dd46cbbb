package middleware

import (
	"net/http"
	"strings"

	"forum-api/helper"
	"forum-api/models"
	"forum-api/repositories"
	"forum-api/services"

	"github.com/gin-gonic/gin"
)

const (
	userKey   = "user"
	recordKey = "record"
)

// CurrentUser returns the authenticated user placed in the context by
// RequireAuth. Guards behind RequireAuth may assume it is present.
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(userKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}

// CurrentRecord returns the subject record placed in the context by
// LoadRecord.
func CurrentRecord(c *gin.Context) *repositories.Record {
	if v, exists := c.Get(recordKey); exists {
		if record, ok := v.(*repositories.Record); ok {
			return record
		}
	}
	return nil
}

// RequireAuth verifies the Bearer token and reloads the user from storage so
// a deleted or mutated user is reflected on every request. A token whose user
// no longer resolves is unauthorized, not a server error.
func RequireAuth(authService services.AuthService, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			return
		}

		userID, err := authService.VerifyToken(tokenString)
		if err != nil {
			h.SendError(c, err)
			c.Abort()
			return
		}

		user, err := authService.GetUserByID(userID)
		if err != nil {
			if _, missing := err.(models.ErrorNotFound); missing {
				h.SendError(c, models.ErrorUnauthorized{Message: "invalid token"})
			} else {
				h.SendError(c, err)
			}
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin terminates the chain with a 403 unless the authenticated user
// is an admin.
func RequireAdmin(h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.Admin {
			h.SendError(c, models.ErrorForbidden{Message: "Forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireOwner terminates with a 403 unless the loaded record belongs to the
// authenticated user.
func RequireOwner(h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		record := CurrentRecord(c)
		if user == nil || record == nil || record.OwnerID != user.ID {
			h.SendError(c, models.ErrorForbidden{Message: "Forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireOwnerOrAdmin passes admins through and otherwise applies the
// ownership check.
func RequireOwnerOrAdmin(h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		record := CurrentRecord(c)
		if user == nil || record == nil || (!user.Admin && record.OwnerID != user.ID) {
			h.SendError(c, models.ErrorForbidden{Message: "Forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}
