package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"kaamconnect/internal/models"
	"kaamconnect/internal/session"
)

// SessionIDKey is the cookie-session key holding the server-side session id.
const SessionIDKey = "sid"

const contextSessionKey = "CurrentSession"

// InjectSession resolves the session id carried by the cookie against the
// server-side table and puts the live session into the request context.
// Expired or unknown ids leave the request anonymous.
func InjectSession(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sid, ok := sess.Get(SessionIDKey).(string); ok {
			if s, ok := mgr.Get(sid); ok {
				c.Set(contextSessionKey, s)
			}
		}
		c.Next()
	}
}

// CurrentSession fetches the session placed by InjectSession, if any.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(contextSessionKey)
	if !ok {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}

// RequireAuth gates any protected route on the presence of a session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Please login first",
				"redirect": "/",
			})
			return
		}
		c.Next()
	}
}

// RequireRole gates a route on the session's role. It composes with
// RequireAuth but does not assume it ran: a missing session is denied too.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok || s.UserType != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Access denied. " + role.Title() + " login required.",
				"redirect": "/",
			})
			return
		}
		c.Next()
	}
}
