package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/gin-gonic/gin"
)

const adminKey = "admin"

// adminRequired rejects requests without a valid admin bearer token.
func (s *Server) adminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}
		token := strings.TrimPrefix(h, "Bearer ")

		admin, err := s.auth.Authorize(token)
		switch {
		case errors.Is(err, common.ErrTokenExpired):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			return
		case errors.Is(err, common.ErrorUnauthorized):
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		case err != nil:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(adminKey, admin)
		c.Next()
	}
}
