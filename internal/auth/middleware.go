package auth

import (
	"net/http"
	"strings"

	"auction-platform/internal/auctionerrors"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

const (
	tokenHeader  = "Authorization"
	tokenPrefix  = "Bearer "
	principalKey = "principal_id"
	claimsKey    = "principal_claims"
)

// RequireAuth rejects requests without a verifiable bearer token and
// stores the principal's id in the request context for handlers.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(tokenHeader)
		if header == "" || !strings.HasPrefix(header, tokenPrefix) {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "invalid token format")
			c.Abort()
			return
		}

		claims, err := verifier.Verify(strings.TrimPrefix(header, tokenPrefix))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set(principalKey, claims.UserID)
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// PrincipalID returns the authenticated user id stored by RequireAuth.
func PrincipalID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
