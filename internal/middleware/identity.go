package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kuaforun/booking-backend/internal/identity"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"

	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// IdentityMiddleware reads the caller identity forwarded by the auth
// gateway. A missing role defaults to customer; an unrecognized role or
// malformed user id is rejected at the boundary.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		roleStr := c.GetHeader(headerUserRole)
		if roleStr == "" {
			roleStr = string(identity.RoleCustomer)
		}

		role, err := identity.ParseRole(roleStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error_code": "unknown_role",
				"message":    "Unrecognized X-User-Role value.",
			})
			return
		}

		if raw := c.GetHeader(headerUserID); raw != "" {
			userID, err := uuid.Parse(raw)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error_code": "invalid_user_id",
					"message":    "X-User-Id must be a UUID.",
				})
				return
			}
			c.Set(ContextUserID, userID)
		}

		c.Set(ContextUserRole, role)
		c.Next()
	}
}

// UserID returns the caller id and whether one was forwarded.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

func UserRole(c *gin.Context) identity.Role {
	return c.MustGet(ContextUserRole).(identity.Role)
}
