package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/coasterdudebob/wwj/models"
	"github.com/coasterdudebob/wwj/services"
)

// Identity resolves a bearer credential to a user record. The journal does
// not own authentication; whatever issues tokens satisfies this interface.
type Identity interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// TokenStore is the database-backed Identity: tokens are looked up on the
// users table.
type TokenStore struct {
	DB *gorm.DB
}

func (s *TokenStore) Resolve(ctx context.Context, token string) (*models.User, error) {
	return services.UserByToken(ctx, s.DB, token)
}

const userContextKey = "currentUser"

// Auth rejects requests without a resolvable bearer token and stores the
// authenticated user on the request context.
func Auth(identity Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := identity.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user the Auth middleware attached to the request.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
