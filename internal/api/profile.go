package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodlog-app/backend/internal/docstore"
	"github.com/foodlog-app/backend/internal/middleware"
	"github.com/foodlog-app/backend/internal/service"
	"github.com/foodlog-app/backend/internal/session"
)

// ProfileHandler serves the account screen. It always re-reads the fresh
// document rather than trusting the snapshot's profile fields.
type ProfileHandler struct {
	profiles *service.ProfileService
	sessions *session.Manager
}

func NewProfileHandler(profiles *service.ProfileService, sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, sessions: sessions}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	user, err := h.profiles.Get(c.Request.Context(), s.ID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile accepts a multipart form: fullname, email, gender, an
// optional password (blank keeps the current one) and an optional avatar.
// On success the session snapshot is rewritten with the new values.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	in := service.ProfileInput{
		FullName: c.PostForm("fullname"),
		Email:    c.PostForm("email"),
		Gender:   c.PostForm("gender"),
		Password: c.PostForm("password"),
	}
	if in.FullName == "" || in.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fullname and email are required"})
		return
	}

	avatar, err := imageFromForm(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profiles.Update(c.Request.Context(), s.ID, in, avatar)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	h.sessions.Write(c, &session.Session{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Gender:   user.Gender,
		ImageURL: user.ImageURL,
	})

	c.JSON(http.StatusOK, user)
}
