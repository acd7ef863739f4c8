package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodlog-app/backend/internal/api"
	"github.com/foodlog-app/backend/internal/middleware"
	"github.com/foodlog-app/backend/internal/session"
)

// SetupRouter configures the application routes.
func SetupRouter(
	authHandler *api.AuthHandler,
	foodHandler *api.FoodHandler,
	profileHandler *api.ProfileHandler,
	sessions *session.Manager,
	corsOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(corsOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	authHandler.RegisterRoutes(v1)

	// Protected routes: everything behind the session gate
	protected := v1.Group("")
	protected.Use(middleware.SessionGate(sessions))
	{
		foodHandler.RegisterRoutes(protected)
		profileHandler.RegisterRoutes(protected)
	}

	return router
}
