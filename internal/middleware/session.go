package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodlog-app/backend/internal/session"
)

// SessionKey is the gin context key the authenticated session is stored
// under for downstream handlers.
const SessionKey = "session"

// SessionGate rejects requests that carry no readable session before any
// protected handler runs. It is the HTTP counterpart of the per-screen
// redirect-to-login check.
func SessionGate(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := sessions.Read(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Set(SessionKey, s)
		c.Next()
	}
}

// CurrentSession returns the session stored by SessionGate.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
