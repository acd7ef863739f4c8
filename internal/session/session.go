// Package session carries the authenticated user's profile snapshot between
// requests. The snapshot is a base64 JSON cookie trusted at face value: no
// token, no signature, no expiry. That weak model is deliberate and matches
// the system this backend serves; swapping it means replacing this package.
package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the persisted session key.
const CookieName = "user"

// ErrNoSession is returned when the request carries no readable session.
var ErrNoSession = errors.New("no session")

// Session is the profile snapshot written at login and profile update.
type Session struct {
	ID       string `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Gender   string `json:"gender"`
	ImageURL string `json:"user_image_url"`
}

// Manager reads and writes the session cookie. It is the single gate every
// protected route goes through.
type Manager struct {
	secure bool
}

// NewManager returns a manager; secure marks the cookie HTTPS-only.
func NewManager(secure bool) *Manager {
	return &Manager{secure: secure}
}

// Read decodes the session from the request. A missing or undecodable cookie
// is ErrNoSession: the caller treats the request as unauthenticated and must
// not expose protected data.
func (m *Manager) Read(c *gin.Context) (*Session, error) {
	raw, err := c.Cookie(CookieName)
	if err != nil {
		return nil, ErrNoSession
	}
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, ErrNoSession
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, ErrNoSession
	}
	if s.ID == "" {
		return nil, ErrNoSession
	}
	return &s, nil
}

// Write stores the snapshot on the response. MaxAge 0 makes it a session
// cookie; it is never explicitly cleared, matching the observed lifecycle.
func (m *Manager) Write(c *gin.Context, s *Session) {
	data, err := json.Marshal(s)
	if err != nil {
		// Session is a struct of strings, marshal cannot fail.
		return
	}
	encoded := base64.RawURLEncoding.EncodeToString(data)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, encoded, 0, "/", "", m.secure, false)
}
