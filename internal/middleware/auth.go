package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/policy"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/services"
)

const IdentityContextKey = "identity"

// Authenticate resolves the caller's identity from a bearer access
// token, falling back to the session cookie. Requests with neither, or
// with an invalid credential, are rejected with 401 before any role is
// looked at. Identity from a token is whatever the claims say; role
// changes only reach the token path after re-authentication.
func Authenticate(tokens *services.TokenService, auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearerToken(c); ok {
			identity, err := tokens.ParseAccess(raw)
			if err != nil {
				abortUnauthorized(c, "invalid or expired token")
				return
			}
			c.Set(IdentityContextKey, *identity)
			c.Next()
			return
		}

		if sessionID, err := c.Cookie(services.SessionCookieKey); err == nil {
			user, err := auth.ValidateSession(sessionID)
			if err != nil {
				abortUnauthorized(c, "invalid or expired session")
				return
			}
			c.Set(IdentityContextKey, user.Identity())
			c.Next()
			return
		}

		abortUnauthorized(c, "authentication required")
	}
}

// RequireRoles gates a route on an allow-set. The set is fixed
// per-route at registration time; an empty set denies every caller.
func RequireRoles(allowed policy.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			abortUnauthorized(c, "authentication required")
			return
		}

		if err := policy.Authorize(identity.Role, allowed); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "access denied for role '" + string(identity.Role) + "'",
			})
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (models.Identity, bool) {
	v, exists := c.Get(IdentityContextKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
