package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskboard/internal/core/ports"
	"taskboard/pkg/apierrors"
)

const principalKey = "principal_id"

// AuthMiddleware verifies the bearer token and stores the principal id on the
// context for handlers to read.
func AuthMiddleware(tokens ports.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(
				apierrors.KindUnauthorized.StatusCode(),
				apierrors.CreateError(apierrors.MsgMissingAuthHeader, lang),
			)
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(
				apierrors.KindUnauthorized.StatusCode(),
				apierrors.CreateError(apierrors.MsgInvalidToken, lang),
			)
			return
		}

		c.Set(principalKey, claims.UserID)
		c.Next()
	}
}

// Principal returns the authenticated user id set by AuthMiddleware.
func Principal(c *gin.Context) int64 {
	if value, exists := c.Get(principalKey); exists {
		if id, ok := value.(int64); ok {
			return id
		}
	}
	return 0
}

// SetPrincipal is exposed for tests that build routers without the full
// token verification chain.
func SetPrincipal(c *gin.Context, userID int64) {
	c.Set(principalKey, userID)
}
