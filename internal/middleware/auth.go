package middleware

import (
	"net/http"

	"eduprep/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the http-only cookie carrying the signed session token.
const SessionCookie = "eduprep_session"

const identityKey = "identity"

// CurrentUser resolves the session cookie into an Identity when present and
// valid, and always continues. Public pages use it to render the nav.
func CurrentUser(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
			if ident, err := authService.ValidateToken(token); err == nil {
				c.Set(identityKey, ident)
			}
		}
		c.Next()
	}
}

// RequireAuth redirects anonymous requests to the login page. It relies on
// CurrentUser having run earlier in the chain.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Identity(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin redirects non-admins to the login page rather than erroring.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := Identity(c)
		if !ok || !ident.IsAdmin {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func Identity(c *gin.Context) (services.Identity, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return services.Identity{}, false
	}
	ident, ok := val.(services.Identity)
	return ident, ok
}
