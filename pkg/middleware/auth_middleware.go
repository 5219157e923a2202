package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	"github.com/ASHISH26940/portfolio-api/pkg/services"
	"github.com/ASHISH26940/portfolio-api/pkg/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Gin context key for storing the authenticated admin.
const AdminUserContextKey = "adminUser"

// Authenticator resolves a bearer token to an admin account.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*db.AdminUser, error)
}

// AuthMiddleware is a Gin middleware to authenticate requests using JWT.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Debug("AuthMiddleware: Missing Authorization header.")
			utils.AbortWithError(c, http.StatusUnauthorized, "Not authorized, no token", nil)
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			log.Debug("AuthMiddleware: Invalid Authorization header format.")
			utils.AbortWithError(c, http.StatusUnauthorized, "Not authorized, invalid token format", nil)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), parts[1])
		switch {
		case errors.Is(err, services.ErrExpiredToken):
			log.Debug("AuthMiddleware: Expired JWT token.")
			utils.AbortWithError(c, http.StatusUnauthorized, "Not authorized, token expired", nil)
			return
		case errors.Is(err, services.ErrInvalidToken):
			log.Debug("AuthMiddleware: Invalid JWT token.")
			utils.AbortWithError(c, http.StatusUnauthorized, "Not authorized, token failed", nil)
			return
		case err != nil:
			log.Errorf("AuthMiddleware: Failed to load admin for token: %v", err)
			utils.ResponseWithAPIError(c, utils.NewInternalError("Failed to authenticate", err))
			c.Abort()
			return
		}

		c.Set(AdminUserContextKey, user)
		log.Debugf("AuthMiddleware: Admin %s (ID: %d) authenticated successfully.", user.Username, user.ID)

		c.Next()
	}
}

// GetAdminFromContext extracts the authenticated admin from the Gin context.
func GetAdminFromContext(c *gin.Context) (*db.AdminUser, bool) {
	value, exists := c.Get(AdminUserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*db.AdminUser)
	if !ok {
		return nil, false
	}
	return user, true
}
