package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	sessionCookieName = "session"
	ctxAdminIDKey     = "admin_id"
	ctxAdminNameKey   = "admin_username"
)

// SessionAuthMiddleware guards admin-only routes. The session token is read
// from the session cookie, or alternatively from an Authorization: Bearer
// header. Requests without a valid admin session are redirected to the
// login form, with no status differentiation between missing and invalid.
func SessionAuthMiddleware(auth service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if token == "" {
			log.Warn("Admin session missing from request")
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		claims, err := auth.ValidateSession(token)
		if err != nil {
			log.WithError(err).Warn("Invalid admin session token")
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set(ctxAdminIDKey, claims.UserID)
		c.Set(ctxAdminNameKey, claims.Username)
		c.Next()
	}
}
