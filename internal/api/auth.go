package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodlog-app/backend/internal/service"
	"github.com/foodlog-app/backend/internal/session"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
}

func NewAuthHandler(auth *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// Register accepts a multipart form: fullname, email, password, gender and
// an optional avatar image.
func (h *AuthHandler) Register(c *gin.Context) {
	in := service.RegisterInput{
		FullName: c.PostForm("fullname"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Gender:   c.PostForm("gender"),
	}
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fullname, email and password are required"})
		return
	}

	avatar, err := imageFromForm(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), in, avatar)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login verifies the credentials and, on success, writes the profile
// snapshot cookie every protected route trusts. Nothing is written on a
// failed comparison.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	snapshot := &session.Session{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Gender:   user.Gender,
		ImageURL: user.ImageURL,
	}
	h.sessions.Write(c, snapshot)

	c.JSON(http.StatusOK, snapshot)
}
