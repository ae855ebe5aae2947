package routes

import (
	orderControllers "github.com/darshan2121/PlantApp/controllers/order"
	plantControllers "github.com/darshan2121/PlantApp/controllers/plant"
	userControllers "github.com/darshan2121/PlantApp/controllers/user"
	"github.com/darshan2121/PlantApp/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the nursery staff endpoints. Requires API-Key middleware.
func SetupAdminRoutes(api *gin.RouterGroup, s Server) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(s.Config.AdminAPIKey))
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(s.Store))

		// ─────────── Plant Management ───────────
		plantAdmin := adminGroup.Group("/items")
		{
			plantAdmin.POST("", plantControllers.CreatePlant(s.Store, s.Config.UploadDir, s.Log))
			plantAdmin.PUT("/:id", plantControllers.UpdatePlant(s.Store))
			plantAdmin.DELETE("/:id", plantControllers.DeletePlant(s.Store))
			plantAdmin.POST("/import-excel", plantControllers.ImportPlantsFromExcel(s.Store))
			plantAdmin.GET("/export-excel", plantControllers.ExportPlantsToExcel(s.Store))
		}

		adminGroup.POST("/categories", plantControllers.CreateCategory(s.Store, s.Config.UploadDir, s.Log))

		// ─────────── Order Desk ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(s.Store))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(s.Store, s.Hub, s.Log))
			orderAdmin.GET("/ws", s.Hub.Serve)
		}
	}
}
