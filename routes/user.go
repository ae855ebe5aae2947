package routes

import (
	userControllers "github.com/darshan2121/PlantApp/controllers/user"
	"github.com/darshan2121/PlantApp/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers the profile endpoints. Requires JWT middleware.
func SetupUserRoutes(api *gin.RouterGroup, s Server) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.ValidateToken(s.Config.JWTSecret))
	{
		userGroup.GET("/profile", userControllers.GetUser(s.Store))
		userGroup.PUT("/profile", userControllers.UpdateUser(s.Store))
	}
}
