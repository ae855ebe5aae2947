package routes

import (
	orderControllers "github.com/darshan2121/PlantApp/controllers/order"
	"github.com/darshan2121/PlantApp/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(api *gin.RouterGroup, s Server) {
	orders := api.Group("/orders")
	orders.Use(middleware.ValidateToken(s.Config.JWTSecret))
	{
		orders.POST("/create", orderControllers.CreateOrderHandler(s.Store, s.Hub, s.Log))
		orders.GET("/my-orders", orderControllers.GetMyOrdersHandler(s.Store))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(s.Store))
		orders.PATCH("/:orderID/cancel", orderControllers.CancelOrderHandler(s.Store, s.Hub, s.Log))
	}
}
