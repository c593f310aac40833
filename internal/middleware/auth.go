package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mahmina/cafe-cortex/internal/models"
	"github.com/Mahmina/cafe-cortex/internal/stores"
	"github.com/Mahmina/cafe-cortex/internal/token"
)

// SessionCookie is the cookie holding the signed session token.
const SessionCookie = "session"

const (
	userKey    = "current_user"
	sessionKey = "session_id"
)

// CurrentUser resolves the session cookie into an authenticated user and
// stores it in the request context. Anonymous requests pass through with
// nothing set; a stale or tampered cookie is treated as anonymous.
func CurrentUser(sessions stores.SessionStore, tokens token.SessionTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil {
			c.Next()
			return
		}
		claims, err := tokens.Parse(raw)
		if err != nil {
			c.Next()
			return
		}
		sess, err := sessions.FindLive(claims.SessionID, time.Now())
		if err != nil {
			c.Next()
			return
		}
		c.Set(userKey, &sess.User)
		c.Set(sessionKey, sess.ID)
		c.Next()
	}
}

// RequireAuth gates a route on a resolved session, redirecting anonymous
// requests to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(userKey); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user for the request, if any.
func UserFrom(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok
}

// SessionIDFrom returns the id of the session backing the request.
func SessionIDFrom(c *gin.Context) (uint, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
