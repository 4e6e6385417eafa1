package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
	"tasktrack/pkg/apierrors"
)

const identityKey = "identity"

// AuthRequired rejects requests without a valid bearer token and makes the
// verified identity available to downstream handlers.
func AuthRequired(authService ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgTokenRequired, lang),
			)
			return
		}

		identity, err := authService.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}

	identity, ok := value.(domain.Identity)
	return identity, ok
}
