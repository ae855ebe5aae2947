package routes

import (
	plantControllers "github.com/darshan2121/PlantApp/controllers/plant"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes registers the public browse endpoints.
func SetupCatalogRoutes(api *gin.RouterGroup, s Server) {
	api.GET("/items", plantControllers.GetItems(s.Store))
	api.GET("/items/:id", plantControllers.GetItemByID(s.Store))
	api.GET("/categories", plantControllers.GetCategories(s.Store))
}
