package routes

import (
	"github.com/darshan2121/PlantApp/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers the public account endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, s Server) {
	tokens := auth.Tokens{Secret: s.Config.JWTSecret, TTL: s.Config.TokenTTL}

	authGroup := api.Group("/user")
	{
		authGroup.POST("/login", auth.Login(s.Store, tokens, s.Log))
		authGroup.POST("/register", auth.Register(s.Store, tokens, s.Log))
	}
}
